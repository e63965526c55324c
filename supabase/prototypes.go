package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"prototype-creator/model"
)

// ErrNotFound is returned when the backend has no record for an identifier.
var ErrNotFound = errors.New("prototype not found")

// prototypeRecord mirrors a row of the prototypes table. All fields are
// optional; the backend has historically returned rows with gaps.
type prototypeRecord struct {
	ID                   *int            `json:"id,omitempty"`
	ShortID              string          `json:"short_id,omitempty"`
	UserID               string          `json:"user_id,omitempty"`
	AppName              string          `json:"app_name,omitempty"`
	UserIdea             string          `json:"user_idea,omitempty"`
	HTMLContent          string          `json:"html_content,omitempty"`
	CreatedAt            string          `json:"created_at,omitempty"`
	ValidatedDescription string          `json:"validated_description,omitempty"`
	ValidationNotes      string          `json:"validation_notes,omitempty"`
	JSONSchema           json.RawMessage `json:"json_schema,omitempty"`
}

// toDomain converts a backend row into the domain type. Identifier and name
// fall back through short_id, the numeric id and finally a placeholder, so a
// half-filled row still renders.
func (r prototypeRecord) toDomain(c *Client) model.Prototype {
	id := r.ShortID
	if id == "" && r.ID != nil {
		id = strconv.Itoa(*r.ID)
	}

	name := r.AppName
	if name == "" {
		name = id
	}
	if name == "" {
		name = "Unknown"
	}

	createdAt, ok := parseTimestamp(r.CreatedAt)
	if !ok {
		c.logger.Warn("Could not parse created_at %q, using current time", r.CreatedAt)
		createdAt = time.Now().UnixMilli()
	}

	return model.Prototype{
		ID:              id,
		Name:            name,
		Description:     r.ValidatedDescription,
		HTMLContent:     r.HTMLContent,
		UserIdea:        r.UserIdea,
		ValidationNotes: r.ValidationNotes,
		CreatedAt:       createdAt,
	}
}

func recordFromDomain(p model.Prototype) prototypeRecord {
	return prototypeRecord{
		ShortID:              p.ID,
		AppName:              p.Name,
		UserIdea:             p.UserIdea,
		HTMLContent:          p.HTMLContent,
		ValidatedDescription: p.Description,
		ValidationNotes:      p.ValidationNotes,
	}
}

// parseTimestamp converts an ISO-8601-ish string ("2024-10-14T23:59:00Z",
// fractional seconds and +00:00 offsets tolerated) into epoch milliseconds
// by extracting the date and time fields by hand. It never fails hard; the
// second return value reports whether the input was usable.
func parseTimestamp(ts string) (int64, bool) {
	if ts == "" {
		return 0, false
	}

	datePart, timePart, found := strings.Cut(ts, "T")
	if !found {
		return 0, false
	}

	timePart = strings.TrimSuffix(timePart, "Z")
	timePart = strings.TrimSuffix(timePart, "+00:00")
	if i := strings.Index(timePart, "."); i >= 0 {
		timePart = timePart[:i]
	}

	dateFields := strings.Split(datePart, "-")
	timeFields := strings.Split(timePart, ":")
	if len(dateFields) != 3 || len(timeFields) < 2 {
		return 0, false
	}

	year, err1 := strconv.Atoi(dateFields[0])
	month, err2 := strconv.Atoi(dateFields[1])
	day, err3 := strconv.Atoi(dateFields[2])
	hour, err4 := strconv.Atoi(timeFields[0])
	minute, err5 := strconv.Atoi(timeFields[1])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return 0, false
	}

	second := 0
	if len(timeFields) >= 3 {
		if s, err := strconv.Atoi(timeFields[2]); err == nil {
			second = s
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return t.UnixMilli(), true
}

// ListPrototypes fetches every prototype ordered by creation time descending.
// The backend's ordering is preserved as-is.
func (c *Client) ListPrototypes(ctx context.Context) ([]model.Prototype, error) {
	data, err := c.Execute(ctx, http.MethodGet, "/rest/v1/prototypes?select=*&order=created_at.desc", nil)
	if err != nil {
		return nil, err
	}

	var records []prototypeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode prototype list: %w", err)
	}

	prototypes := make([]model.Prototype, 0, len(records))
	for _, r := range records {
		prototypes = append(prototypes, r.toDomain(c))
	}

	c.logger.Info("Loaded %d prototypes from backend", len(prototypes))
	return prototypes, nil
}

// GetPrototype fetches a single prototype by its short identifier. A zero-row
// response yields ErrNotFound.
func (c *Client) GetPrototype(ctx context.Context, id string) (model.Prototype, error) {
	path := "/rest/v1/prototypes?short_id=eq." + url.QueryEscape(id)
	data, err := c.Execute(ctx, http.MethodGet, path, nil)
	if err != nil {
		return model.Prototype{}, err
	}

	var records []prototypeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return model.Prototype{}, fmt.Errorf("failed to decode prototype: %w", err)
	}
	if len(records) == 0 {
		return model.Prototype{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return records[0].toDomain(c), nil
}

// SavePrototype creates or updates a prototype. A non-empty client-supplied
// identifier selects PATCH (update); an empty one selects POST (create).
func (c *Client) SavePrototype(ctx context.Context, p model.Prototype) (model.Prototype, error) {
	method := http.MethodPost
	path := "/rest/v1/prototypes"
	if p.ID != "" {
		method = http.MethodPatch
		path = "/rest/v1/prototypes?short_id=eq." + url.QueryEscape(p.ID)
	}

	data, err := c.Execute(ctx, method, path, recordFromDomain(p))
	if err != nil {
		return model.Prototype{}, err
	}

	var records []prototypeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return model.Prototype{}, fmt.Errorf("failed to decode save response: %w", err)
	}
	if len(records) == 0 {
		return model.Prototype{}, errors.New("failed to save prototype: empty response")
	}

	return records[0].toDomain(c), nil
}

// DeletePrototype removes the remote record for the given identifier.
func (c *Client) DeletePrototype(ctx context.Context, id string) error {
	path := "/rest/v1/prototypes?short_id=eq." + url.QueryEscape(id)
	if _, err := c.Execute(ctx, http.MethodDelete, path, nil); err != nil {
		return err
	}
	c.logger.Info("Deleted prototype %s", id)
	return nil
}
