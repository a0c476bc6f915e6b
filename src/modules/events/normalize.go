package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/LakniR23/EventHub-sub001/src/core/models"
)

const dateFormat = "2006-01-02"

// legacyCategories maps retired admin-form category tokens to their current
// values. Old bookmarked forms still submit the retired tokens.
var legacyCategories = map[string]string{
	"WORKSHOP": "WORKSHOPS_CREATIVE",
}

// CurrentCategory substitutes a legacy category token with its current value;
// any other token passes through unchanged.
func CurrentCategory(category string) string {
	if mapped, ok := legacyCategories[category]; ok {
		return mapped
	}
	return category
}

// BuildCreateRecord shapes an untrusted creation payload into a persistable
// event. Optional fields are left nil (omitted) unless meaningfully non-empty;
// required fields are copied verbatim, since the validation middleware has
// already rejected missing values.
func BuildCreateRecord(payload map[string]interface{}) *models.Event {
	event := &models.Event{
		Title:           stringValue(payload["title"]),
		Description:     stringValue(payload["description"]),
		Time:            stringValue(payload["time"]),
		Location:        stringValue(payload["location"]),
		Faculty:         stringValue(payload["faculty"]),
		Category:        CurrentCategory(stringValue(payload["category"])),
		Organizer:       stringValue(payload["organizer"]),
		RegisteredCount: 0,
		Price:           "Free",
		Status:          "Active",
		Featured:        boolValue(payload["featured"]),
		HasRegistration: true,
		Tags:            pq.StringArray(stringSlice(payload["tags"])),
		Requirements:    pq.StringArray(stringSlice(payload["requirements"])),
		Prizes:          pq.StringArray(stringSlice(payload["prizes"])),
	}

	if s, ok := nonBlank(payload["price"]); ok {
		event.Price = s
	}
	if s, ok := nonBlank(payload["status"]); ok {
		event.Status = s
	}
	if n, ok := positiveInt(payload["registeredCount"]); ok {
		event.RegisteredCount = n
	}

	// "explicitly false" and "absent" must stay distinguishable: an admin form
	// that never mentions registration still gets a registerable event.
	if v, present := payload["hasRegistration"]; present {
		event.HasRegistration = boolValue(v)
	}

	if t, ok := parseDate(payload["date"]); ok {
		event.Date = t
	}
	if v, present := payload["endDate"]; present {
		if t, ok := parseDate(v); ok {
			event.EndDate = &t
		}
	}
	if n, ok := positiveInt(payload["maxParticipants"]); ok {
		event.MaxParticipants = &n
	}

	event.FullDescription = optionalString(payload["fullDescription"])
	event.Company = optionalString(payload["company"])
	event.Industry = optionalString(payload["industry"])
	event.JobOpportunities = optionalString(payload["jobOpportunities"])
	event.InternshipOpportunities = optionalString(payload["internshipOpportunities"])
	event.SkillsRequired = optionalString(payload["skillsRequired"])
	event.Dresscode = optionalString(payload["dresscode"])
	event.Image = optionalString(payload["image"])

	if arr, ok := nonEmptyArray(payload["agenda"]); ok {
		event.Agenda = jsonValue(arr)
	}
	if arr, ok := nonEmptyArray(payload["speakers"]); ok {
		event.Speakers = jsonValue(arr)
	}
	if m, ok := truthyMap(payload["contact"]); ok {
		event.Contact = jsonValue(m)
	}

	return event
}

// nullableColumns maps payload keys for optional scalar fields onto their
// column names. On update, present-and-empty clears the column to NULL;
// on create the same input omits the field entirely.
var nullableColumns = map[string]string{
	"fullDescription":         "full_description",
	"company":                 "company",
	"industry":                "industry",
	"jobOpportunities":        "job_opportunities",
	"internshipOpportunities": "internship_opportunities",
	"skillsRequired":          "skills_required",
	"dresscode":               "dresscode",
	"image":                   "image",
}

var passthroughColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"time":        "time",
	"location":    "location",
	"faculty":     "faculty",
	"organizer":   "organizer",
	"status":      "status",
	"price":       "price",
}

var arrayColumns = map[string]string{
	"tags":         "tags",
	"requirements": "requirements",
	"prizes":       "prizes",
}

// BuildUpdatePatch shapes a partial payload into an update write-set. Only
// keys present in the payload are ever touched; absent keys never appear in
// the result. updated_at is always refreshed.
func BuildUpdatePatch(payload map[string]interface{}) map[string]interface{} {
	patch := map[string]interface{}{"updated_at": time.Now()}

	for key, column := range passthroughColumns {
		if v, present := payload[key]; present {
			patch[column] = stringValue(v)
		}
	}
	if v, present := payload["category"]; present {
		patch["category"] = CurrentCategory(stringValue(v))
	}
	if v, present := payload["featured"]; present {
		patch["featured"] = boolValue(v)
	}
	if v, present := payload["hasRegistration"]; present {
		patch["has_registration"] = boolValue(v)
	}
	if v, present := payload["date"]; present {
		if t, ok := parseDate(v); ok {
			patch["date"] = t
		}
	}

	for key, column := range nullableColumns {
		if v, present := payload[key]; present {
			if s, ok := nonBlank(v); ok {
				patch[column] = s
			} else {
				patch[column] = nil
			}
		}
	}
	if v, present := payload["endDate"]; present {
		if t, ok := parseDate(v); ok {
			patch["end_date"] = t
		} else {
			patch["end_date"] = nil
		}
	}
	if v, present := payload["maxParticipants"]; present {
		if n, ok := positiveInt(v); ok {
			patch["max_participants"] = n
		} else {
			patch["max_participants"] = nil
		}
	}

	for key, column := range arrayColumns {
		if v, present := payload[key]; present {
			if _, isArray := v.([]interface{}); isArray {
				patch[column] = pq.StringArray(stringSlice(v))
			}
		}
	}

	// JSON blobs behave differently from the scalars above: present-but-empty
	// leaves the stored value untouched instead of clearing it. The admin
	// frontend depends on this, so it is kept even though it is inconsistent.
	if v, present := payload["agenda"]; present {
		if arr, ok := nonEmptyArray(v); ok {
			patch["agenda"] = jsonValue(arr)
		}
	}
	if v, present := payload["speakers"]; present {
		if arr, ok := nonEmptyArray(v); ok {
			patch["speakers"] = jsonValue(arr)
		}
	}
	if v, present := payload["contact"]; present {
		if m, ok := truthyMap(v); ok {
			patch["contact"] = jsonValue(m)
		}
	}

	return patch
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

// nonBlank returns the raw string and whether it has non-space content.
// Trimming decides inclusion only; the stored value keeps its whitespace.
func nonBlank(v interface{}) (string, bool) {
	s := stringValue(v)
	return s, strings.TrimSpace(s) != ""
}

func optionalString(v interface{}) *string {
	if s, ok := nonBlank(v); ok {
		return &s
	}
	return nil
}

func boolValue(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	case float64:
		return t != 0
	default:
		return false
	}
}

// stringSlice coerces a decoded JSON array to []string; anything that is not
// an array yields an empty sequence.
func stringSlice(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(item))
		}
	}
	return out
}

func parseDate(v interface{}) (time.Time, bool) {
	s := strings.TrimSpace(stringValue(v))
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateFormat, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// positiveInt accepts JSON numbers and numeric strings; only values > 0 count.
func positiveInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		if n := int(t); n > 0 {
			return n, true
		}
	case int:
		if t > 0 {
			return t, true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}

func nonEmptyArray(v interface{}) ([]interface{}, bool) {
	arr, ok := v.([]interface{})
	if !ok || len(arr) == 0 {
		return nil, false
	}
	return arr, true
}

// truthyMap reports a mapping with at least one truthy value (non-empty
// string, true, or non-zero number).
func truthyMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	if !ok || len(m) == 0 {
		return nil, false
	}
	for _, value := range m {
		switch t := value.(type) {
		case string:
			if strings.TrimSpace(t) != "" {
				return m, true
			}
		case bool:
			if t {
				return m, true
			}
		case float64:
			if t != 0 {
				return m, true
			}
		}
	}
	return nil, false
}

func jsonValue(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
