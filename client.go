package botvac

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const acceptHeader = "application/vnd.neato.nucleo.v1"

// Robot sends command messages to one Botvac Connected robot through the
// Nucleo cloud relay. Every call is one signed JSON POST and one
// response; nothing is cached except the advertised service catalog,
// which is populated at construction and on RefreshAvailableServices.
//
// A Robot is read-only after construction apart from that catalog, so
// concurrent calls are fine as long as RefreshAvailableServices is not
// raced against commands.
type Robot struct {
	serial string
	secret string
	traits []string
	name   string

	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
	reqID      func() string
	now        func() time.Time

	services map[string]string
}

// NewRobot builds a client and performs one getRobotState round trip to
// learn the robot's available services. It fails if that query fails.
func NewRobot(ctx context.Context, cfg Config) (*Robot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		caPEM := cfg.CACertPEM
		if len(caPEM) == 0 {
			caPEM = nucleoCertPEM
		}
		var err error
		httpClient, err = newPinnedHTTPClient(caPEM, cfg.timeout())
		if err != nil {
			return nil, err
		}
	}

	r := &Robot{
		serial:     cfg.Serial,
		secret:     cfg.Secret,
		traits:     append([]string(nil), cfg.Traits...),
		name:       cfg.Name,
		endpoint:   fmt.Sprintf("%s/vendors/neato/robots/%s/messages", cfg.baseURL(), url.PathEscape(cfg.Serial)),
		httpClient: httpClient,
		log:        cfg.logger(),
		reqID:      cfg.requestID(),
		now:        time.Now,
	}

	if err := r.RefreshAvailableServices(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Serial returns the robot serial.
func (r *Robot) Serial() string { return r.serial }

// Name returns the optional display name.
func (r *Robot) Name() string { return r.name }

// Traits returns the extras the robot supports.
func (r *Robot) Traits() []string { return append([]string(nil), r.traits...) }

// AvailableServices returns a copy of the advertised service catalog.
func (r *Robot) AvailableServices() map[string]string {
	out := make(map[string]string, len(r.services))
	for k, v := range r.services {
		out[k] = v
	}
	return out
}

// RefreshAvailableServices re-queries robot state and replaces the
// service catalog.
func (r *Robot) RefreshAvailableServices(ctx context.Context) error {
	state, err := r.GetRobotState(ctx)
	if err != nil {
		return err
	}
	r.services = state.AvailableServices
	return nil
}

// StartCleaning starts a house cleaning run. Which of mode and
// navigationMode the robot honours depends on its advertised
// houseCleaning version: basic-1 takes mode only, minimal-2 takes
// navigationMode only, basic-2 takes both.
func (r *Robot) StartCleaning(ctx context.Context, mode CleaningMode, navigationMode NavigationMode) (*CommandResponse, error) {
	version, err := r.houseCleaningVersion()
	if err != nil {
		return nil, err
	}
	return r.sendCommand(ctx, "startCleaning", startCleaningParams(version, mode, navigationMode))
}

// PauseCleaning pauses the current cleaning run.
func (r *Robot) PauseCleaning(ctx context.Context) (*CommandResponse, error) {
	if _, err := r.houseCleaningVersion(); err != nil {
		return nil, err
	}
	return r.sendCommand(ctx, "pauseCleaning", nil)
}

// ResumeCleaning resumes a paused cleaning run.
func (r *Robot) ResumeCleaning(ctx context.Context) (*CommandResponse, error) {
	if _, err := r.houseCleaningVersion(); err != nil {
		return nil, err
	}
	return r.sendCommand(ctx, "resumeCleaning", nil)
}

// StopCleaning stops the current cleaning run.
func (r *Robot) StopCleaning(ctx context.Context) (*CommandResponse, error) {
	if _, err := r.houseCleaningVersion(); err != nil {
		return nil, err
	}
	return r.sendCommand(ctx, "stopCleaning", nil)
}

// SendToBase sends the robot back to its charging base.
func (r *Robot) SendToBase(ctx context.Context) (*CommandResponse, error) {
	if _, err := r.houseCleaningVersion(); err != nil {
		return nil, err
	}
	return r.sendCommand(ctx, "sendToBase", nil)
}

// GetRobotState fetches the current robot state document. Always a fresh
// round trip.
func (r *Robot) GetRobotState(ctx context.Context) (*RobotState, error) {
	body, err := r.send(ctx, "getRobotState", nil)
	if err != nil {
		return nil, err
	}
	var state RobotState
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, fmt.Errorf("parse robot state: %w", err)
	}
	return &state, nil
}

// State is getRobotState under the name the rest of the API uses; it
// exists so hosts reading "state" get an explicit method instead of a
// property that hides a network call.
func (r *Robot) State(ctx context.Context) (*RobotState, error) {
	return r.GetRobotState(ctx)
}

// EnableSchedule turns the cleaning schedule on.
func (r *Robot) EnableSchedule(ctx context.Context) (*CommandResponse, error) {
	return r.sendCommand(ctx, "enableSchedule", nil)
}

// DisableSchedule turns the cleaning schedule off.
func (r *Robot) DisableSchedule(ctx context.Context) (*CommandResponse, error) {
	return r.sendCommand(ctx, "disableSchedule", nil)
}

// GetSchedule fetches the cleaning schedule.
func (r *Robot) GetSchedule(ctx context.Context) (*Schedule, error) {
	body, err := r.send(ctx, "getSchedule", nil)
	if err != nil {
		return nil, err
	}
	var schedule Schedule
	if err := json.Unmarshal(body, &schedule); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return &schedule, nil
}

// ScheduleEnabled reports whether the cleaning schedule is enabled,
// reading details.isScheduleEnabled from a fresh state query.
func (r *Robot) ScheduleEnabled(ctx context.Context) (bool, error) {
	state, err := r.GetRobotState(ctx)
	if err != nil {
		return false, err
	}
	return state.Details.IsScheduleEnabled, nil
}

// SetScheduleEnabled enables or disables the cleaning schedule.
func (r *Robot) SetScheduleEnabled(ctx context.Context, enabled bool) error {
	var err error
	if enabled {
		_, err = r.EnableSchedule(ctx)
	} else {
		_, err = r.DisableSchedule(ctx)
	}
	return err
}

func (r *Robot) houseCleaningVersion() (HouseCleaningVersion, error) {
	return ParseHouseCleaningVersion(r.services[serviceHouseCleaning])
}

func (r *Robot) sendCommand(ctx context.Context, cmd string, params any) (*CommandResponse, error) {
	body, err := r.send(ctx, cmd, params)
	if err != nil {
		return nil, err
	}
	var resp CommandResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse %s response: %w", cmd, err)
	}
	return &resp, nil
}

func (r *Robot) send(ctx context.Context, cmd string, params any) ([]byte, error) {
	body, err := json.Marshal(message{ReqID: r.reqID(), Cmd: cmd, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", cmd, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Content-Type", "application/json")
	// Sign at the instant of the call; the server rejects stale dates.
	signRequest(req, r.serial, r.secret, body, r.now())

	r.log.Debug().Str("cmd", cmd).Msg("sending nucleo command")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", cmd, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", cmd, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.log.Debug().Str("cmd", cmd).Int("status", resp.StatusCode).Msg("nucleo command rejected")
		return nil, HTTPStatusError{Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
