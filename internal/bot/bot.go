package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/memes"
	"github.com/xaenox/memedb/internal/models"
)

const searchResultLimit = 5

// Bot is the Telegram surface: send a photo to save it with auto-generated
// tags, send text to search the collection.
type Bot struct {
	api     *tgbotapi.BotAPI
	service *memes.Service
	http    *http.Client
	logger  *zap.Logger
}

func New(token string, service *memes.Service, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:     api,
		service: service,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	if len(message.Photo) > 0 {
		b.handlePhoto(ctx, message)
		return
	}

	if message.Text != "" {
		b.handleSearch(ctx, message)
		return
	}

	b.sendMessage(message.Chat.ID, "Send me a meme image to save it, or text to search your collection.")
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome to MemeDB! 🖼

Send me any meme image and I'll tag it automatically and save it to your collection.
Send me text to search your saved memes.

Use /help to see all available commands.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message

You can send:
- A photo (optionally with a caption) to save it with automatic tags
- Any text to search your saved memes

Tags are generated automatically from the image content!`

	b.sendMessage(message.Chat.ID, help)
}

// handlePhoto downloads the largest photo variant, runs it through the
// tagging pipeline and uploads it.
func (b *Bot) handlePhoto(ctx context.Context, message *tgbotapi.Message) {
	photo := message.Photo[len(message.Photo)-1]

	content, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.logger.Error("failed to download photo",
			zap.Error(err),
			zap.String("file_id", photo.FileID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't download that image. Please try again.")
		return
	}

	result, err := b.service.UploadFromBookmarklet(ctx, photo.FileID+".jpg", content, "telegram")
	if err != nil {
		b.logger.Error("failed to save meme",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't save your meme. Please try again.")
		return
	}

	b.sendTagsResponse(message.Chat.ID, message.MessageID, result)
}

func (b *Bot) handleSearch(ctx context.Context, message *tgbotapi.Message) {
	results, err := b.service.Search(ctx, models.SearchQuery{
		Q:     message.Text,
		Limit: searchResultLimit,
	})
	if err != nil {
		b.logger.Error("search failed",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, search is unavailable right now.")
		return
	}

	if len(results) == 0 {
		b.sendMessage(message.Chat.ID, "No memes found for that query.")
		return
	}

	response := "*Found memes:*\n\n"
	for _, meme := range results {
		response += escapeMarkdown(meme.ImageURL) + "\n"
		if len(meme.Tags) > 0 {
			tags := make([]string, len(meme.Tags))
			for i, tag := range meme.Tags {
				tags[i] = "#" + escapeMarkdown(strings.ReplaceAll(tag, " ", "_"))
			}
			response += fmt.Sprintf("Tags: %s\n", strings.Join(tags, " "))
		}
		response += "\n"
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, response)
	msg.ParseMode = "MarkdownV2"
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send search results",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

func (b *Bot) sendTagsResponse(chatID int64, replyToID int, result *memes.UploadResult) {
	formattedTags := make([]string, len(result.Meme.Tags))
	for i, tag := range result.Meme.Tags {
		formattedTags[i] = escapeMarkdown("#" + strings.ReplaceAll(tag, " ", "_"))
	}

	text := "*Saved\\!*\n"
	if len(formattedTags) > 0 {
		text += fmt.Sprintf("*Tags:* %s\n", strings.Join(formattedTags, " "))
	}
	if result.Degraded {
		text += "\n_Tagged without AI analysis\\._"
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	msg.ReplyToMessageID = replyToID

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send tags response",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// escapeMarkdown escapes special characters for MarkdownV2.
func escapeMarkdown(text string) string {
	specialChars := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
