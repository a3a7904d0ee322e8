package botvac

import "encoding/json"

// CleaningMode selects the cleaning intensity.
type CleaningMode int

const (
	CleaningModeEco   CleaningMode = 1
	CleaningModeTurbo CleaningMode = 2
)

// NavigationMode selects how carefully the robot navigates.
type NavigationMode int

const (
	NavigationModeNormal    NavigationMode = 1
	NavigationModeExtraCare NavigationMode = 2
)

// house cleaning is category 2 in the Nucleo protocol
const categoryHouseCleaning = 2

// message is the outgoing Nucleo command envelope.
type message struct {
	ReqID  string `json:"reqId"`
	Cmd    string `json:"cmd"`
	Params any    `json:"params,omitempty"`
}

// CommandResponse is the generic Nucleo response envelope for command
// messages. Data is left raw; commands that return a structured document
// (getRobotState, getSchedule) have typed variants instead.
type CommandResponse struct {
	Version int             `json:"version"`
	ReqID   string          `json:"reqId"`
	Result  string          `json:"result"`
	Error   *string         `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// RobotState is the document returned by getRobotState.
type RobotState struct {
	Version int     `json:"version"`
	ReqID   string  `json:"reqId"`
	Result  string  `json:"result"`
	Error   *string `json:"error"`

	State  int `json:"state"`
	Action int `json:"action"`

	Cleaning struct {
		Category       int `json:"category"`
		Mode           int `json:"mode"`
		Modifier       int `json:"modifier"`
		NavigationMode int `json:"navigationMode"`
		SpotWidth      int `json:"spotWidth"`
		SpotHeight     int `json:"spotHeight"`
	} `json:"cleaning"`

	Details struct {
		IsCharging        bool `json:"isCharging"`
		IsDocked          bool `json:"isDocked"`
		IsScheduleEnabled bool `json:"isScheduleEnabled"`
		DockHasBeenSeen   bool `json:"dockHasBeenSeen"`
		Charge            int  `json:"charge"`
	} `json:"details"`

	AvailableCommands map[string]bool `json:"availableCommands"`

	// AvailableServices maps service name to advertised schema version,
	// e.g. "houseCleaning" -> "basic-1".
	AvailableServices map[string]string `json:"availableServices"`

	Meta struct {
		ModelName string `json:"modelName"`
		Firmware  string `json:"firmware"`
	} `json:"meta"`
}

// Schedule is the document returned by getSchedule. Events are kept raw:
// their shape varies with the schedule service version and callers that
// care can decode them against their robot's schema.
type Schedule struct {
	Version int          `json:"version"`
	ReqID   string       `json:"reqId"`
	Result  string       `json:"result"`
	Error   *string      `json:"error"`
	Data    ScheduleData `json:"data"`
}

type ScheduleData struct {
	Type    int               `json:"type"`
	Enabled bool              `json:"enabled"`
	Events  []json.RawMessage `json:"events"`
}
