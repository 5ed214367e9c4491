// Package navigator classifies inbound chat text against the guided-selection
// menus. It replaces free-form predicate routing with a fixed transition
// table: every caption is matched exactly, and anything unrecognized falls
// through to a free-text intent. No input ever fails to classify.
package navigator

// Screen is the guided-selection state of one conversation.
type Screen int

const (
	ScreenRoot Screen = iota
	ScreenMood
	ScreenGift
)

// ParseScreen maps a persisted value back to a Screen, defaulting to root for
// anything outside the known set.
func ParseScreen(v int) Screen {
	switch s := Screen(v); s {
	case ScreenRoot, ScreenMood, ScreenGift:
		return s
	default:
		return ScreenRoot
	}
}

// IntentKind tells the caller what an inbound message meant.
type IntentKind int

const (
	// IntentNavigate re-renders a menu; Reply and Keyboard are set.
	IntentNavigate IntentKind = iota
	// IntentStatic is a fixed informational reply (catalog link, FAQ).
	IntentStatic
	// IntentTagQuery asks for a recommendation filtered by Tag.
	IntentTagQuery
	// IntentFreeText hands the raw message to the recommender.
	IntentFreeText
)

// Decision is the outcome of routing one message. Screen is the state to
// persist for the conversation after the reply is sent.
type Decision struct {
	Kind     IntentKind
	Screen   Screen
	Tag      string
	Label    string
	Text     string
	Keyboard [][]string
}

// Route classifies text against the current screen. Mood and recipient
// captions are recognized from any screen; the screen only determines which
// keyboard a back-navigation re-renders, so a lost session degrades to
// nothing worse than a re-shown root menu. Tag selections reset the
// conversation to the root screen.
func Route(screen Screen, text string) Decision {
	switch text {
	case CommandStart:
		return Decision{Kind: IntentNavigate, Screen: ScreenRoot, Text: greetingReply, Keyboard: RootKeyboard()}
	case CaptionMoodCategory:
		return Decision{Kind: IntentNavigate, Screen: ScreenMood, Text: moodPrompt, Keyboard: MoodKeyboard()}
	case CaptionGiftCategory:
		return Decision{Kind: IntentNavigate, Screen: ScreenGift, Text: giftPrompt, Keyboard: GiftKeyboard()}
	case CaptionBack:
		return Decision{Kind: IntentNavigate, Screen: ScreenRoot, Text: rootPrompt, Keyboard: RootKeyboard()}
	case CaptionCatalog:
		return Decision{Kind: IntentStatic, Screen: screen, Text: catalogReply}
	case CaptionFAQ:
		return Decision{Kind: IntentStatic, Screen: screen, Text: faqReply}
	}

	if tag, ok := moodTags[text]; ok {
		return Decision{Kind: IntentTagQuery, Screen: ScreenRoot, Tag: tag, Label: text}
	}
	if tag, ok := giftTags[text]; ok {
		return Decision{Kind: IntentTagQuery, Screen: ScreenRoot, Tag: tag, Label: text}
	}

	return Decision{Kind: IntentFreeText, Screen: screen, Text: text}
}
