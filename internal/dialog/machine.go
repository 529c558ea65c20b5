package dialog

import (
	"fmt"
	"strings"
	"time"

	"github.com/hksports/sportsbuddy/internal/activity"
)

// CommonSports are offered on the sport selection keyboard, two per row.
var CommonSports = []string{
	"Basketball", "Football", "Tennis", "Badminton",
	"Running", "Swimming", "Volleyball", "Table Tennis",
}

// Districts are offered on the district selection keyboard, three per row.
var Districts = []string{
	"Central and Western",
	"Eastern",
	"Islands",
	"Kowloon City",
	"Kwai Tsing",
	"Kwun Tong",
	"North",
	"Sai Kung",
	"Sha Tin",
	"Sham Shui Po",
	"Southern",
	"Tai Po",
	"Tuen Mun",
	"Tsuen Wan",
	"Wan Chai",
	"Wong Tai Sin",
	"Yau Tsim Mong",
	"Yuen Long",
}

// OtherChoice is the payload of the free-text escape button on selection keyboards.
const OtherChoice = "other"

// Keyboard names the markup a reply should carry; the transport layer maps
// each kind to actual inline buttons.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardSports
	KeyboardDistricts
	KeyboardTime
	KeyboardConfirm
)

// Reply is a single outgoing message produced by a dialogue step.
type Reply struct {
	Text     string
	Keyboard Keyboard
	// Edit requests editing the message that carried the pressed button
	// instead of sending a new one.
	Edit bool
	// Markdown enables Markdown parse mode for the text.
	Markdown bool
}

// Result describes the outcome of feeding one input into the dialogue.
type Result struct {
	Replies []Reply
	// Completed holds the assembled record once the user confirms.
	Completed *activity.Record
	// Done indicates the session should be cleared.
	Done bool
}

// Begin moves a fresh session into the name step and returns its prompt.
func Begin(s *Session) Result {
	s.State = StateName
	return Result{Replies: []Reply{{
		Text: fmt.Sprintf(
			"I'll use your Telegram name (%s) by default, but you can provide a different name if you prefer. What name would you like to use?",
			s.DefaultName),
	}}}
}

// HandleText feeds a typed message into the dialogue.
func HandleText(s *Session, text string, now time.Time) Result {
	text = strings.TrimSpace(text)
	switch s.State {
	case StateName:
		return handleName(s, text, now)
	case StateSport:
		s.Sport = text
		s.State = StateLocation
		return Result{Replies: []Reply{locationPrompt(s.Sport)}}
	case StateLocation:
		s.Location = text
		s.State = StateDistrict
		return Result{Replies: []Reply{districtPrompt()}}
	case StateDistrict:
		s.District = text
		return afterDistrict(s, now, false)
	case StateTime:
		s.Time = text
		s.State = StateConfirmation
		return Result{Replies: []Reply{confirmationPrompt(s)}}
	}
	return Result{}
}

func handleName(s *Session, text string, now time.Time) Result {
	var replies []Reply
	if len([]rune(text)) < 2 {
		s.Name = s.DefaultName
		replies = append(replies, Reply{Text: fmt.Sprintf("Using your default name: %s", s.Name)})
	} else {
		s.Name = text
		replies = append(replies, Reply{Text: fmt.Sprintf("Thanks, %s! Now let's continue.", s.Name)})
	}

	// Skip ahead past slots already filled by intent extraction.
	switch {
	case s.Sport != "" && s.Location != "":
		s.State = StateDistrict
		replies = append(replies, Reply{
			Text: fmt.Sprintf(
				"Great! You'll be playing %s at %s.\n\nWhich district is this in?",
				s.Sport, s.Location),
			Keyboard: KeyboardDistricts,
		})
	case s.Sport != "":
		s.State = StateLocation
		replies = append(replies, Reply{
			Text: fmt.Sprintf(
				"Where will you be playing %s?\n(e.g., Victoria Park Basketball Court, HKBU Sports Centre)",
				s.Sport),
		})
	default:
		s.State = StateSport
		replies = append(replies, Reply{
			Text:     "What sport will you be playing?",
			Keyboard: KeyboardSports,
		})
	}
	return Result{Replies: replies}
}

// HandleSportChoice feeds a sport keyboard press into the dialogue.
func HandleSportChoice(s *Session, choice string) Result {
	if choice == OtherChoice {
		s.State = StateSport
		return Result{Replies: []Reply{{
			Text: "Please type the name of the sport you'll be playing:",
			Edit: true,
		}}}
	}
	s.Sport = choice
	s.State = StateLocation
	prompt := locationPrompt(choice)
	prompt.Edit = true
	return Result{Replies: []Reply{prompt}}
}

// HandleDistrictChoice feeds a district keyboard press into the dialogue.
func HandleDistrictChoice(s *Session, choice string, now time.Time) Result {
	if choice == OtherChoice {
		s.State = StateDistrict
		return Result{Replies: []Reply{{
			Text: "Please type the name of the district:",
			Edit: true,
		}}}
	}
	s.District = choice
	return afterDistrict(s, now, true)
}

// HandleTimeChoice feeds a time keyboard press into the dialogue.
func HandleTimeChoice(s *Session, choice string) Result {
	if choice == OtherChoice {
		s.State = StateTime
		return Result{Replies: []Reply{{
			Text: "Please enter the time (e.g., 14:30, 2:30 PM):",
			Edit: true,
		}}}
	}
	s.Time = choice
	s.State = StateConfirmation
	prompt := confirmationPrompt(s)
	prompt.Edit = true
	return Result{Replies: []Reply{prompt}}
}

// HandleConfirm resolves the final confirm/cancel press. On confirmation the
// assembled record is returned for persistence; the session ends either way.
func HandleConfirm(s *Session, confirmed bool, now time.Time) Result {
	if !confirmed {
		return Result{
			Replies: []Reply{{
				Text: "Registration cancelled. Feel free to try again when you're ready!",
				Edit: true,
			}},
			Done: true,
		}
	}
	rec := activity.Record{
		Name:     s.Name,
		Sport:    s.Sport,
		Location: s.Location,
		District: s.District,
		Time:     s.Time,
		Date:     now.Format(activity.DateLayout),
	}
	return Result{Completed: &rec, Done: true}
}

// SuccessText renders the post-save confirmation for a registered activity.
func SuccessText(rec activity.Record) string {
	return fmt.Sprintf(
		"✅ Great! Your activity has been registered.\n\n"+
			"I'll let others know %s is playing %s at %s in %s.\n\n"+
			"Have fun playing! 🎉",
		rec.Name, rec.Sport, rec.Time, rec.Location)
}

// SaveFailedText is shown when persisting the confirmed record fails.
const SaveFailedText = "Sorry, there was an error saving your information. Please try again."

func afterDistrict(s *Session, now time.Time, edit bool) Result {
	if s.Time != "" {
		s.State = StateConfirmation
		prompt := confirmationPrompt(s)
		prompt.Edit = edit
		return Result{Replies: []Reply{prompt}}
	}
	s.State = StateTime
	return Result{Replies: []Reply{{
		Text:     "What time will you be playing today?",
		Keyboard: KeyboardTime,
		Edit:     edit,
	}}}
}

func locationPrompt(sport string) Reply {
	return Reply{
		Text: fmt.Sprintf(
			"Great! You'll be playing %s. What's the specific location?\n(e.g., Victoria Park Basketball Court, HKBU Sports Centre)",
			sport),
	}
}

func districtPrompt() Reply {
	return Reply{
		Text:     "Which district is this in?",
		Keyboard: KeyboardDistricts,
	}
}

func confirmationPrompt(s *Session) Reply {
	return Reply{
		Text: fmt.Sprintf(
			"📋 *Sport Activity Registration*\n\n"+
				"👤 *Name:* %s\n"+
				"🏀 *Sport:* %s\n"+
				"📍 *Location:* %s\n"+
				"🏙️ *District:* %s\n"+
				"🕒 *Time:* %s\n\n"+
				"Does this look correct?",
			s.Name, s.Sport, s.Location, s.District, s.Time),
		Keyboard: KeyboardConfirm,
		Markdown: true,
	}
}

// TimeSlots suggests half-hour slots starting from the current hour.
// The window spans up to eight hours and never reaches past 22:30.
func TimeSlots(now time.Time) []string {
	hour := now.Hour()
	end := hour + 8
	if end > 23 {
		end = 23
	}
	var slots []string
	for h := hour; h < end; h++ {
		slots = append(slots, fmt.Sprintf("%d:00", h), fmt.Sprintf("%d:30", h))
	}
	return slots
}
