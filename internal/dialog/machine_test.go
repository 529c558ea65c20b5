package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 18, 5, 0, 0, time.UTC)

func TestFullRegistrationWalk(t *testing.T) {
	s := &Session{DefaultName: "Alice"}

	res := Begin(s)
	require.Len(t, res.Replies, 1)
	assert.Equal(t, StateName, s.State)
	assert.Contains(t, res.Replies[0].Text, "Alice")

	res = HandleText(s, "Bob", testNow)
	require.Len(t, res.Replies, 2)
	assert.Equal(t, "Bob", s.Name)
	assert.Equal(t, StateSport, s.State)
	assert.Equal(t, KeyboardSports, res.Replies[1].Keyboard)

	res = HandleSportChoice(s, "Tennis")
	require.Len(t, res.Replies, 1)
	assert.Equal(t, "Tennis", s.Sport)
	assert.Equal(t, StateLocation, s.State)
	assert.True(t, res.Replies[0].Edit)

	res = HandleText(s, "Victoria Park", testNow)
	require.Len(t, res.Replies, 1)
	assert.Equal(t, StateDistrict, s.State)
	assert.Equal(t, KeyboardDistricts, res.Replies[0].Keyboard)

	res = HandleDistrictChoice(s, "Wan Chai", testNow)
	require.Len(t, res.Replies, 1)
	assert.Equal(t, StateTime, s.State)
	assert.Equal(t, KeyboardTime, res.Replies[0].Keyboard)

	res = HandleTimeChoice(s, "18:30")
	require.Len(t, res.Replies, 1)
	assert.Equal(t, StateConfirmation, s.State)
	assert.Equal(t, KeyboardConfirm, res.Replies[0].Keyboard)
	assert.True(t, res.Replies[0].Markdown)
	assert.Contains(t, res.Replies[0].Text, "Wan Chai")

	res = HandleConfirm(s, true, testNow)
	require.NotNil(t, res.Completed)
	assert.True(t, res.Done)
	assert.Equal(t, "Bob", res.Completed.Name)
	assert.Equal(t, "Tennis", res.Completed.Sport)
	assert.Equal(t, "Victoria Park", res.Completed.Location)
	assert.Equal(t, "Wan Chai", res.Completed.District)
	assert.Equal(t, "18:30", res.Completed.Time)
	assert.Equal(t, "2026-03-14", res.Completed.Date)
}

func TestShortNameFallsBackToDefault(t *testing.T) {
	s := &Session{DefaultName: "Alice"}
	Begin(s)

	res := HandleText(s, "x", testNow)
	assert.Equal(t, "Alice", s.Name)
	require.NotEmpty(t, res.Replies)
	assert.Contains(t, res.Replies[0].Text, "default name: Alice")
}

func TestPrefilledSportSkipsToLocation(t *testing.T) {
	s := &Session{DefaultName: "Alice", Sport: "Basketball"}
	Begin(s)

	res := HandleText(s, "Bob", testNow)
	assert.Equal(t, StateLocation, s.State)
	require.Len(t, res.Replies, 2)
	assert.Contains(t, res.Replies[1].Text, "Basketball")
	assert.Equal(t, KeyboardNone, res.Replies[1].Keyboard)
}

func TestPrefilledSportAndLocationSkipToDistrict(t *testing.T) {
	s := &Session{DefaultName: "Alice", Sport: "Basketball", Location: "Victoria Park"}
	Begin(s)

	res := HandleText(s, "Bob", testNow)
	assert.Equal(t, StateDistrict, s.State)
	require.Len(t, res.Replies, 2)
	assert.Equal(t, KeyboardDistricts, res.Replies[1].Keyboard)
}

func TestPrefilledTimeSkipsTimeStep(t *testing.T) {
	s := &Session{DefaultName: "Alice", Sport: "Basketball", Location: "Victoria Park", Time: "19:00"}
	Begin(s)
	HandleText(s, "Bob", testNow)

	res := HandleDistrictChoice(s, "Eastern", testNow)
	assert.Equal(t, StateConfirmation, s.State)
	require.Len(t, res.Replies, 1)
	assert.Equal(t, KeyboardConfirm, res.Replies[0].Keyboard)
	assert.Contains(t, res.Replies[0].Text, "19:00")
}

func TestOtherChoicesPromptForFreeText(t *testing.T) {
	s := &Session{DefaultName: "Alice", State: StateSport}

	res := HandleSportChoice(s, OtherChoice)
	assert.Equal(t, StateSport, s.State)
	assert.Empty(t, s.Sport)
	require.Len(t, res.Replies, 1)
	assert.Contains(t, res.Replies[0].Text, "type the name of the sport")

	s.State = StateDistrict
	res = HandleDistrictChoice(s, OtherChoice, testNow)
	assert.Equal(t, StateDistrict, s.State)
	assert.Empty(t, s.District)
	assert.Contains(t, res.Replies[0].Text, "type the name of the district")

	s.State = StateTime
	res = HandleTimeChoice(s, OtherChoice)
	assert.Equal(t, StateTime, s.State)
	assert.Empty(t, s.Time)
	assert.Contains(t, res.Replies[0].Text, "enter the time")
}

func TestConfirmNoCancelsWithoutRecord(t *testing.T) {
	s := &Session{State: StateConfirmation, Name: "Bob", Sport: "Tennis"}

	res := HandleConfirm(s, false, testNow)
	assert.Nil(t, res.Completed)
	assert.True(t, res.Done)
	require.Len(t, res.Replies, 1)
	assert.Contains(t, res.Replies[0].Text, "cancelled")
}

func TestTextAtConfirmationIsIgnored(t *testing.T) {
	s := &Session{State: StateConfirmation}
	res := HandleText(s, "yes please", testNow)
	assert.Empty(t, res.Replies)
	assert.Equal(t, StateConfirmation, s.State)
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"20:00", "20:30", "21:00", "21:30", "22:00", "22:30"}, slots)

	slots = TimeSlots(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	require.Len(t, slots, 16)
	assert.Equal(t, "9:00", slots[0])
	assert.Equal(t, "16:30", slots[15])

	// Late evening leaves only the free-text option.
	assert.Empty(t, TimeSlots(time.Date(2026, 3, 14, 23, 10, 0, 0, time.UTC)))
}
