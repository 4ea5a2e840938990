package tagging

import "strings"

// textContextRule maps substrings found in extracted image text to
// situational tags. Groups are ordered roughly by how often they show up.
type textContextRule struct {
	keywords []string
	tags     []string
}

var textContextRules = []textContextRule{
	// Work
	{keywords: []string{"deadline", "due", "urgent", "asap"}, tags: []string{"work-deadline", "time-pressure"}},
	{keywords: []string{"meeting", "zoom", "teams", "call"}, tags: []string{"meeting-culture", "remote-work"}},
	{keywords: []string{"boss", "manager", "supervisor"}, tags: []string{"office-hierarchy", "workplace-drama"}},
	{keywords: []string{"overtime", "late night", "working"}, tags: []string{"work-life-balance", "burnout"}},

	// Programming
	{keywords: []string{"bug", "error", "debug", "crash"}, tags: []string{"programming-bug", "debugging-life"}},
	{keywords: []string{"javascript", "python", "react", "code"}, tags: []string{"programming", "tech-culture"}},
	{keywords: []string{"stack overflow", "copy paste", "documentation"}, tags: []string{"developer-humor", "coding-reality"}},
	{keywords: []string{"git", "commit", "merge", "push"}, tags: []string{"version-control", "git-humor"}},

	// Dating and relationships
	{keywords: []string{"match", "swipe", "profile", "bio"}, tags: []string{"dating-app-culture", "modern-dating"}},
	{keywords: []string{"single", "relationship", "dating"}, tags: []string{"relationship-status", "love-life"}},
	{keywords: []string{"ex", "breakup", "heartbreak"}, tags: []string{"breakup-feels", "relationship-drama"}},

	// Social media
	{keywords: []string{"like", "follow", "subscribe", "share"}, tags: []string{"social-media-culture", "internet-validation"}},
	{keywords: []string{"influencer", "content", "viral"}, tags: []string{"influencer-culture", "content-creation"}},
	{keywords: []string{"algorithm", "feed", "recommended"}, tags: []string{"social-media-algorithm", "digital-manipulation"}},

	// Mental health
	{keywords: []string{"anxiety", "stress", "overwhelmed"}, tags: []string{"mental-health", "anxiety-life"}},
	{keywords: []string{"depressed", "sad", "crying"}, tags: []string{"depression-humor", "emotional-state"}},
	{keywords: []string{"therapy", "therapist", "counseling"}, tags: []string{"therapy-culture", "mental-health-awareness"}},

	// Student life
	{keywords: []string{"exam", "test", "study", "homework"}, tags: []string{"student-life", "academic-stress"}},
	{keywords: []string{"professor", "teacher", "class"}, tags: []string{"education-system", "academic-life"}},
	{keywords: []string{"semester", "finals", "midterm"}, tags: []string{"exam-season", "student-stress"}},

	// Internet culture
	{keywords: []string{"meme", "viral", "trending"}, tags: []string{"internet-culture", "meme-meta"}},
	{keywords: []string{"boomer", "millennial", "gen z"}, tags: []string{"generational-humor", "age-gap"}},
	{keywords: []string{"cringe", "based", "sus"}, tags: []string{"internet-slang", "online-culture"}},

	// Modern life
	{keywords: []string{"adulting", "responsibility", "bills"}, tags: []string{"adult-life", "responsibility-humor"}},
	{keywords: []string{"procrastination", "later", "tomorrow"}, tags: []string{"procrastination-life", "avoidance-behavior"}},
	{keywords: []string{"productivity", "hustle", "grind"}, tags: []string{"hustle-culture", "productivity-pressure"}},

	// Gaming
	{keywords: []string{"game", "gaming", "player"}, tags: []string{"gaming-culture", "gamer-life"}},
	{keywords: []string{"stream", "twitch", "youtube"}, tags: []string{"streaming-culture", "content-gaming"}},
	{keywords: []string{"lag", "fps", "graphics"}, tags: []string{"gaming-problems", "tech-gaming"}},

	// AI and tech
	{keywords: []string{"ai", "chatgpt", "artificial intelligence"}, tags: []string{"ai-culture", "tech-revolution"}},
	{keywords: []string{"robot", "automation", "machine"}, tags: []string{"automation-anxiety", "future-tech"}},
	{keywords: []string{"data", "privacy"}, tags: []string{"data-privacy", "tech-awareness"}},
}

const maxTextContextTags = 5

// AnalyzeTextContext turns extracted image text into situational tags,
// capped at the five most relevant in rule-declaration order.
func AnalyzeTextContext(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	tags := newOrderedSet()
	for _, rule := range textContextRules {
		if containsAny(lower, rule.keywords) {
			for _, tag := range rule.tags {
				tags.add(tag)
			}
		}
	}

	result := tags.slice()
	if len(result) > maxTextContextTags {
		result = result[:maxTextContextTags]
	}
	return result
}
