package extractor

import (
	"regexp"
	"strings"

	"github.com/fadilmartias/cold-mail-generator/internal/model"
	"github.com/tidwall/gjson"
)

// ParseStrategy identifies which recovery step produced the records.
type ParseStrategy int

const (
	StrategyNone ParseStrategy = iota
	StrategyArrayMatch
	StrategyWholeText
	StrategyObjectMatch
)

func (s ParseStrategy) String() string {
	switch s {
	case StrategyArrayMatch:
		return "array-match"
	case StrategyWholeText:
		return "whole-text"
	case StrategyObjectMatch:
		return "object-match"
	default:
		return "none"
	}
}

var (
	arrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

var fieldAliases = map[string][]string{
	"title":       {"title", "role_title", "job_title", "role", "position"},
	"company":     {"company", "company_name", "organization", "employer"},
	"location":    {"location", "job_location"},
	"description": {"description", "summary", "responsibilities"},
}

// ParseJobRecords recovers job records from free-form model output. The
// boolean is false when no strategy could decode the text.
func ParseJobRecords(modelText string) ([]model.JobRecord, bool) {
	records, strategy := parseWithStrategy(modelText)
	return records, strategy != StrategyNone
}

func parseWithStrategy(text string) ([]model.JobRecord, ParseStrategy) {
	if m := arrayPattern.FindString(text); m != "" {
		if records, ok := decodeArray(m); ok {
			return records, StrategyArrayMatch
		}
	}

	if records, ok := decodeArray(strings.TrimSpace(text)); ok {
		return records, StrategyWholeText
	}

	if m := objectPattern.FindString(text); m != "" {
		if record, ok := decodeObject(m); ok {
			return []model.JobRecord{record}, StrategyObjectMatch
		}
	}

	return nil, StrategyNone
}

func decodeArray(s string) ([]model.JobRecord, bool) {
	if !gjson.Valid(s) {
		return nil, false
	}
	res := gjson.Parse(s)
	if !res.IsArray() {
		return nil, false
	}

	records := make([]model.JobRecord, 0)
	ok := true
	res.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			ok = false
			return false
		}
		records = append(records, recordFromJSON(v))
		return true
	})
	if !ok {
		return nil, false
	}
	return records, true
}

func decodeObject(s string) (model.JobRecord, bool) {
	if !gjson.Valid(s) {
		return model.JobRecord{}, false
	}
	res := gjson.Parse(s)
	if !res.IsObject() {
		return model.JobRecord{}, false
	}
	return recordFromJSON(res), true
}

func recordFromJSON(obj gjson.Result) model.JobRecord {
	fields := make(map[string]gjson.Result)
	obj.ForEach(func(key, value gjson.Result) bool {
		k := strings.ToLower(strings.TrimSpace(key.String()))
		if _, seen := fields[k]; !seen {
			fields[k] = value
		}
		return true
	})

	return model.NewJobRecord(
		lookupField(fields, "title"),
		lookupField(fields, "company"),
		lookupField(fields, "location"),
		lookupField(fields, "description"),
	)
}

func lookupField(fields map[string]gjson.Result, name string) string {
	for _, key := range fieldAliases[name] {
		v, ok := fields[key]
		if !ok || v.Type == gjson.Null {
			continue
		}
		if s := strings.TrimSpace(jsonText(v)); s != "" {
			return s
		}
	}
	return ""
}

func jsonText(v gjson.Result) string {
	if !v.IsArray() {
		return v.String()
	}
	var parts []string
	for _, item := range v.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
