package dialog

// State identifies a step of the registration dialogue.
type State string

const (
	// StateIdle indicates there is no active dialogue with the user.
	StateIdle State = "idle"
	// StateName waits for the display name to register under.
	StateName State = "name"
	// StateSport waits for the sport, typed or picked from the keyboard.
	StateSport State = "sport"
	// StateLocation waits for the free-text venue.
	StateLocation State = "location"
	// StateDistrict waits for the district, typed or picked from the keyboard.
	StateDistrict State = "district"
	// StateTime waits for the play time, typed or picked from the keyboard.
	StateTime State = "time"
	// StateConfirmation waits for the final confirm/cancel button press.
	StateConfirmation State = "confirmation"
)

// Session accumulates dialogue slots for one user.
// Slots may arrive pre-filled from intent extraction, in which case the
// corresponding steps are skipped.
type Session struct {
	State       State
	DefaultName string
	Name        string
	Sport       string
	Location    string
	District    string
	Time        string
}

// Prefill carries slot values extracted before the dialogue starts.
type Prefill struct {
	Sport    string
	Location string
	Time     string
}
