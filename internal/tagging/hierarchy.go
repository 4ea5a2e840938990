package tagging

import (
	"sort"
	"strings"
)

// TagDefinition describes one canonical tag in the hierarchy. Weight is a
// static search priority in [0,1] used for bucket placement only.
type TagDefinition struct {
	Name     string
	Weight   float64
	Synonyms []string
	Related  []string
}

// Weight thresholds for bucket placement.
const (
	templateWeight = 0.9
	emotionWeight  = 0.8
	topicWeight    = 0.7
	relatedWeight  = 0.6

	// DefaultWeight is assumed for tags not present in the hierarchy.
	DefaultWeight = 0.5
)

// hierarchy is the static tag table, keyed by canonical tag name.
// It is initialized once and never mutated.
var hierarchy = map[string]TagDefinition{
	// Classic meme templates (highest search priority)
	"drake-pointing":        {Weight: 0.95, Synonyms: []string{"drake", "pointing", "choice"}, Related: []string{"decision", "comparison"}},
	"distracted-boyfriend":  {Weight: 0.95, Synonyms: []string{"distracted", "temptation", "cheating"}, Related: []string{"relationship", "drama"}},
	"expanding-brain":       {Weight: 0.95, Synonyms: []string{"galaxy-brain", "smart", "intelligence"}, Related: []string{"evolution", "progress"}},
	"change-my-mind":        {Weight: 0.95, Synonyms: []string{"debate", "argument", "prove"}, Related: []string{"discussion", "opinion"}},
	"this-is-fine":          {Weight: 0.95, Synonyms: []string{"fire", "burning", "denial"}, Related: []string{"stress", "denial"}},
	"surprised-pikachu":     {Weight: 0.95, Synonyms: []string{"pikachu", "surprised", "shocked"}, Related: []string{"reaction", "shock"}},
	"woman-yelling-at-cat":  {Weight: 0.95, Synonyms: []string{"yelling", "argument", "confusion"}, Related: []string{"misunderstanding", "drama"}},
	"two-buttons":           {Weight: 0.95, Synonyms: []string{"difficult-choice", "decision", "dilemma"}, Related: []string{"choice", "struggle"}},
	"epic-handshake":        {Weight: 0.95, Synonyms: []string{"agreement", "unity", "common-ground"}, Related: []string{"cooperation", "alliance"}},
	"always-has-been":       {Weight: 0.95, Synonyms: []string{"realization", "betrayal", "truth"}, Related: []string{"revelation", "deception"}},
	"stonks":                {Weight: 0.95, Synonyms: []string{"stocks", "finance", "investment"}, Related: []string{"money", "economy"}},
	"arthur-fist":           {Weight: 0.95, Synonyms: []string{"anger", "frustration", "clenched"}, Related: []string{"rage", "annoyed"}},
	"leonardo-dicaprio":     {Weight: 0.95, Synonyms: []string{"pointing", "recognition", "that-guy"}, Related: []string{"celebrity", "recognition"}},
	"sailor-moon":           {Weight: 0.95, Synonyms: []string{"fighting", "justice", "anime"}, Related: []string{"anime", "transformation"}},
	"monkey-puppet":         {Weight: 0.95, Synonyms: []string{"awkward", "side-eye", "looking"}, Related: []string{"uncomfortable", "suspicious"}},

	// Internet culture icons
	"wojak":          {Weight: 0.9, Synonyms: []string{"doomer", "bloomer", "coomer"}, Related: []string{"mood", "personality"}},
	"pepe":           {Weight: 0.9, Synonyms: []string{"frog", "rare-pepe"}, Related: []string{"mascot", "culture"}},
	"chad-vs-virgin": {Weight: 0.9, Synonyms: []string{"chad", "virgin", "comparison"}, Related: []string{"stereotype", "comparison"}},
	"soyjak":         {Weight: 0.9, Synonyms: []string{"soy", "crying", "weak"}, Related: []string{"stereotype", "internet-culture"}},
	"gigachad":       {Weight: 0.9, Synonyms: []string{"alpha", "strong", "perfect"}, Related: []string{"masculinity", "ideal"}},

	// Modern/trending templates
	"coffin-dance":   {Weight: 0.9, Synonyms: []string{"funeral", "death", "ghana"}, Related: []string{"death", "celebration"}},
	"bernie-mittens": {Weight: 0.9, Synonyms: []string{"bernie-sanders", "sitting", "mittens"}, Related: []string{"politics", "cold"}},
	"salt-bae":       {Weight: 0.9, Synonyms: []string{"salt", "chef", "sprinkling"}, Related: []string{"cooking", "style"}},
	"big-brain":      {Weight: 0.9, Synonyms: []string{"smart", "intelligence", "genius"}, Related: []string{"thinking", "clever"}},
	"brain-size":     {Weight: 0.9, Synonyms: []string{"brain-expansion", "intelligence-levels"}, Related: []string{"intelligence", "evolution"}},

	// Emotions and reactions
	"funny":     {Weight: 0.8, Synonyms: []string{"humor", "comedy", "hilarious"}, Related: []string{"entertainment", "joy"}},
	"surprised": {Weight: 0.8, Synonyms: []string{"shocked", "amazed", "astonished"}, Related: []string{"reaction", "emotion"}},
	"confused":  {Weight: 0.8, Synonyms: []string{"puzzled", "baffled", "perplexed"}, Related: []string{"thinking", "uncertainty"}},
	"angry":     {Weight: 0.8, Synonyms: []string{"mad", "furious", "rage"}, Related: []string{"emotion", "frustration"}},
	"sad":       {Weight: 0.8, Synonyms: []string{"depressed", "melancholy", "gloomy"}, Related: []string{"emotion", "mood"}},
	"happy":     {Weight: 0.8, Synonyms: []string{"joyful", "cheerful", "delighted"}, Related: []string{"emotion", "positive"}},
	"wholesome": {Weight: 0.8, Synonyms: []string{"pure", "innocent", "sweet"}, Related: []string{"positive", "feel-good"}},
	"cursed":    {Weight: 0.8, Synonyms: []string{"disturbing", "weird", "strange"}, Related: []string{"dark-humor", "bizarre"}},
	"blessed":   {Weight: 0.8, Synonyms: []string{"amazing", "wonderful", "fantastic"}, Related: []string{"positive", "excellent"}},
	"cringe":    {Weight: 0.8, Synonyms: []string{"awkward", "embarrassing", "uncomfortable"}, Related: []string{"reaction", "discomfort"}},
	"based":     {Weight: 0.8, Synonyms: []string{"cool", "awesome", "great"}, Related: []string{"positive", "approval"}},

	// Topics and themes
	"gaming":       {Weight: 0.7, Synonyms: []string{"game", "gamer", "videogame"}, Related: []string{"entertainment", "hobby"}},
	"programming":  {Weight: 0.7, Synonyms: []string{"code", "developer", "software"}, Related: []string{"tech", "work"}},
	"work":         {Weight: 0.7, Synonyms: []string{"office", "job", "career"}, Related: []string{"professional", "adult-life"}},
	"school":       {Weight: 0.7, Synonyms: []string{"education", "student", "learning"}, Related: []string{"academic", "youth"}},
	"relationship": {Weight: 0.7, Synonyms: []string{"love", "dating", "romance"}, Related: []string{"personal", "social"}},
	"food":         {Weight: 0.7, Synonyms: []string{"eating", "hungry", "delicious"}, Related: []string{"lifestyle", "pleasure"}},
	"animals":      {Weight: 0.7, Synonyms: []string{"pet", "cute", "wildlife"}, Related: []string{"nature", "companionship"}},
	"sports":       {Weight: 0.7, Synonyms: []string{"athletic", "fitness", "competition"}, Related: []string{"physical", "activity"}},
	"politics":     {Weight: 0.7, Synonyms: []string{"government", "election", "policy"}, Related: []string{"current-events", "society"}},
	"technology":   {Weight: 0.7, Synonyms: []string{"tech", "digital", "innovation"}, Related: []string{"modern", "progress"}},

	// Situational compound contexts
	"work-deadline":      {Weight: 0.7, Synonyms: []string{"deadline-stress", "time-pressure", "rush"}, Related: []string{"work", "anxiety", "productivity"}},
	"programming-bug":    {Weight: 0.7, Synonyms: []string{"coding-error", "debugging", "software-issue"}, Related: []string{"programming", "frustration", "problem-solving"}},
	"social-anxiety":     {Weight: 0.7, Synonyms: []string{"awkward", "uncomfortable", "nervous"}, Related: []string{"social", "anxiety", "interaction"}},
	"imposter-syndrome":  {Weight: 0.7, Synonyms: []string{"self-doubt", "inadequate", "fake"}, Related: []string{"confidence", "work", "insecurity"}},
	"dating-app-fail":    {Weight: 0.7, Synonyms: []string{"dating-struggle", "romance-fail", "dating-life"}, Related: []string{"dating", "disappointment", "modern-love"}},
	"procrastination":    {Weight: 0.7, Synonyms: []string{"delay", "postpone", "avoidance"}, Related: []string{"productivity", "anxiety", "deadline"}},
	"remote-work-life":   {Weight: 0.7, Synonyms: []string{"wfh", "home-office", "remote"}, Related: []string{"work", "lifestyle", "modern"}},
	"ai-hype":            {Weight: 0.7, Synonyms: []string{"artificial-intelligence", "machine-learning", "tech-trend"}, Related: []string{"technology", "future", "automation"}},
	"productivity-guilt": {Weight: 0.7, Synonyms: []string{"hustle-culture", "busy-shame", "optimization"}, Related: []string{"productivity", "mental-health", "pressure"}},
	"student-life":       {Weight: 0.7, Synonyms: []string{"college", "university", "academic"}, Related: []string{"education", "stress", "youth"}},
	"adulting":           {Weight: 0.7, Synonyms: []string{"adult-responsibilities", "grown-up", "maturity"}, Related: []string{"life-skills", "responsibility", "independence"}},
	"burnout":            {Weight: 0.7, Synonyms: []string{"exhaustion", "overwhelmed", "mental-fatigue"}, Related: []string{"work", "stress", "mental-health"}},
	"overthinking":       {Weight: 0.7, Synonyms: []string{"rumination", "anxiety-spiral", "mental-loop"}, Related: []string{"anxiety", "mental-health", "thought-patterns"}},
	"self-care":          {Weight: 0.7, Synonyms: []string{"wellness", "mental-health", "boundaries"}, Related: []string{"health", "balance", "wellbeing"}},
	"existential-crisis": {Weight: 0.7, Synonyms: []string{"life-meaning", "purpose", "quarter-life"}, Related: []string{"philosophy", "anxiety", "identity"}},

	// Relatable content
	"relatable":    {Weight: 0.6, Synonyms: []string{"everyday", "common"}, Related: []string{"universal", "shared-experience"}},
	"mood":         {Weight: 0.6, Synonyms: []string{"feeling", "vibe", "state"}, Related: []string{"emotion", "attitude"}},
	"weekend":      {Weight: 0.6, Synonyms: []string{"friday", "saturday", "sunday"}, Related: []string{"leisure", "free-time"}},
	"monday":       {Weight: 0.6, Synonyms: []string{"workday", "weekday", "routine"}, Related: []string{"work", "responsibility"}},
	"stress":       {Weight: 0.6, Synonyms: []string{"anxiety", "pressure", "overwhelmed"}, Related: []string{"mental-health", "challenge"}},
	"tired":        {Weight: 0.6, Synonyms: []string{"exhausted", "sleepy", "fatigued"}, Related: []string{"physical", "rest"}},
	"social-media": {Weight: 0.6, Synonyms: []string{"internet", "online", "digital"}, Related: []string{"modern", "communication"}},
	"gen-z":        {Weight: 0.6, Synonyms: []string{"zoomer", "young-adult", "internet-native"}, Related: []string{"generation", "culture", "digital"}},
	"millennial":   {Weight: 0.6, Synonyms: []string{"thirty-something", "adult", "middle-aged"}, Related: []string{"generation", "culture", "nostalgia"}},
	"nostalgia":    {Weight: 0.6, Synonyms: []string{"throwback", "memories", "childhood"}, Related: []string{"past", "sentimental", "memories"}},

	// Quality indicators (lowest search priority)
	"high-quality": {Weight: 0.4, Synonyms: []string{"premium", "excellent", "top-tier"}, Related: []string{"quality", "standard"}},
	"low-effort":   {Weight: 0.4, Synonyms: []string{"simple", "basic", "minimal"}, Related: []string{"effort", "complexity"}},
	"original":     {Weight: 0.4, Synonyms: []string{"unique", "creative", "innovative"}, Related: []string{"creativity", "uniqueness"}},
	"template":     {Weight: 0.4, Synonyms: []string{"format", "structure", "pattern"}, Related: []string{"reusable", "standard"}},
	"deep-fried":   {Weight: 0.4, Synonyms: []string{"over-processed", "exaggerated", "intense"}, Related: []string{"style", "aesthetic"}},
	"meta":         {Weight: 0.4, Synonyms: []string{"self-referential", "aware", "commentary"}, Related: []string{"self-awareness", "commentary"}},
}

// Lookup returns the definition for a tag after lowercasing and trimming.
func Lookup(tag string) (TagDefinition, bool) {
	def, ok := hierarchy[normalize(tag)]
	if ok {
		def.Name = normalize(tag)
	}
	return def, ok
}

// Weight returns the hierarchy weight for a tag, or DefaultWeight for
// unknown tags.
func Weight(tag string) float64 {
	if def, ok := hierarchy[normalize(tag)]; ok {
		return def.Weight
	}
	return DefaultWeight
}

// Synonyms returns the synonym list for a known tag, nil otherwise.
func Synonyms(tag string) []string {
	if def, ok := hierarchy[normalize(tag)]; ok {
		return def.Synonyms
	}
	return nil
}

// RelatedTags returns the related-tag list for a known tag, nil otherwise.
func RelatedTags(tag string) []string {
	if def, ok := hierarchy[normalize(tag)]; ok {
		return def.Related
	}
	return nil
}

// AllTags returns every canonical tag name in the hierarchy.
func AllTags() []string {
	tags := make([]string, 0, len(hierarchy))
	for name := range hierarchy {
		tags = append(tags, name)
	}
	return tags
}

// TagsByCategory returns hierarchy tags whose weight sits in the named band:
// templates, emotions, topics, relatable or quality.
func TagsByCategory(category string) []string {
	targets := map[string]float64{
		"templates": 0.9,
		"emotions":  0.8,
		"topics":    0.7,
		"relatable": 0.6,
		"quality":   0.4,
	}
	target, ok := targets[category]
	if !ok {
		return nil
	}

	var tags []string
	for name, def := range hierarchy {
		if diff := def.Weight - target; diff < 0.1 && diff > -0.1 {
			tags = append(tags, name)
		}
	}
	sortByWeightThenName(tags)
	return tags
}

// sortByWeightThenName orders tags heaviest-first, breaking ties
// alphabetically, so map-backed accessors return a stable order.
func sortByWeightThenName(tags []string) {
	sort.Slice(tags, func(i, j int) bool {
		wi, wj := Weight(tags[i]), Weight(tags[j])
		if wi != wj {
			return wi > wj
		}
		return tags[i] < tags[j]
	})
}

func normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
