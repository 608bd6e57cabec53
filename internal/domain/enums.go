package domain

// Category is the situational reason class for an excuse.
type Category string

const (
	CategoryWork      Category = "work"
	CategoryFamily    Category = "family"
	CategoryHealth    Category = "health"
	CategoryTransport Category = "transport"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryFamily, CategoryHealth, CategoryTransport:
		return true
	}
	return false
}

// AllCategories lists every category in display order.
func AllCategories() []Category {
	return []Category{CategoryWork, CategoryFamily, CategoryHealth, CategoryTransport}
}

// Tone is the register requested for the excuse text.
type Tone string

const (
	ToneFriendly Tone = "friendly"
	ToneUrgent   Tone = "urgent"
	ToneSubtle   Tone = "subtle"
)

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneFriendly, ToneUrgent, ToneSubtle:
		return true
	}
	return false
}

// AllTones lists every tone in display order.
func AllTones() []Tone {
	return []Tone{ToneFriendly, ToneUrgent, ToneSubtle}
}

// Source tags where an excuse text came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

func (s Source) String() string { return string(s) }

// CallType selects how the simulated emergency call is presented.
type CallType string

const (
	CallTypeAudio CallType = "audio"
	CallTypeVideo CallType = "video"
)

func (c CallType) String() string { return string(c) }

func (c CallType) IsValid() bool {
	switch c {
	case CallTypeAudio, CallTypeVideo:
		return true
	}
	return false
}
