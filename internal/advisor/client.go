package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/nerrad567/accesshub-core/internal/infrastructure/config"
	"github.com/nerrad567/accesshub-core/internal/room"
)

// Logger defines the logging interface used by the Client.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// SuggestionInput is the free-text context sent to the text-generation
// service. All three fields are opaque prose from the advisor's point of
// view; the core performs no semantic validation on them.
type SuggestionInput struct {
	GuestPreferences string `json:"guest_preferences"`
	RoomAvailability string `json:"room_availability"`
	HistoricalData   string `json:"historical_data"`
}

// Suggestion is the advisor's answer: a room identifier and the rationale
// behind it. The core does not verify that the suggested room actually
// exists or is available — reconciliation, if desired, is caller-side.
type Suggestion struct {
	SuggestedRoom string `json:"suggested_room"`
	Reasoning     string `json:"reasoning"`
}

// generateRequest is the wire request for the text-generation endpoint.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// generateResponse is the wire response. Text must contain a JSON object
// matching the Suggestion schema.
type generateResponse struct {
	Text string `json:"text"`
}

// promptTemplate frames the guest context for the model and pins the
// output to the Suggestion JSON schema.
const promptTemplate = `You are an assistant that suggests the best room assignment for hotel guests.

Consider the guest's preferences, room availability, and historical booking data to make the best suggestion.

Guest Preferences: %s
Room Availability: %s
Historical Data: %s

Reply with a JSON object only: {"suggested_room": "<room number>", "reasoning": "<why>"}.`

// Client calls an external text-generation API for room assignment
// suggestions. One templated call per request: no retries, no caching,
// no response validation beyond the schema shape. Failures are returned
// to the immediate caller, which proceeds without a suggestion.
type Client struct {
	http   *resty.Client
	model  string
	logger Logger
}

// NewClient creates an advisor client from configuration.
func NewClient(cfg config.AdvisorConfig) *Client {
	http := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.GetTimeout()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		http.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		http:   http,
		model:  cfg.Model,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

// Suggest asks the text-generation service for a room recommendation.
func (c *Client) Suggest(ctx context.Context, in SuggestionInput) (*Suggestion, error) {
	req := generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, in.GuestPreferences, in.RoomAvailability, in.HistoricalData),
	}

	var body generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post("/v1/generate")
	if err != nil {
		c.logger.Error("advisor request failed", "error", err)
		return nil, fmt.Errorf("calling advisor: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("advisor returned error status", "status", resp.StatusCode())
		return nil, fmt.Errorf("advisor returned status %d", resp.StatusCode())
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(body.Text)), &s); err != nil {
		c.logger.Error("advisor returned malformed suggestion", "error", err)
		return nil, fmt.Errorf("parsing suggestion: %w", err)
	}
	if s.SuggestedRoom == "" {
		return nil, fmt.Errorf("parsing suggestion: missing suggested_room")
	}

	c.logger.Info("suggestion received", "suggested_room", s.SuggestedRoom)
	return &s, nil
}

// DescribeAvailability flattens the currently available rooms into the
// free-text availability summary the advisor expects.
func DescribeAvailability(rooms []room.Room) string {
	var available []string
	for _, rm := range rooms {
		if rm.Status != room.StatusAvailable {
			continue
		}
		available = append(available, fmt.Sprintf("Room %s (%s): $%.0f/night, amenities: %s",
			rm.Number, rm.Type, rm.PricePerNight, strings.Join(rm.Amenities, ", ")))
	}
	if len(available) == 0 {
		return "No rooms are currently available."
	}
	return strings.Join(available, "\n")
}
