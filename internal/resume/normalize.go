package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeAPIDocument decodes a single-document read response from the content
// API. Both observed shapes are accepted: the enveloped form
// {"data":{"id":7,"attributes":{...}}} and an already-flat {"id":...,...}.
// Numeric IDs are normalized to their decimal string form since the core
// treats IDs as opaque.
func DecodeAPIDocument(raw []byte) (Document, error) {
	flat, err := FlattenAPIPayload(raw)
	if err != nil {
		return Document{}, err
	}
	payload, err := json.Marshal(flat)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// FlattenAPIPayload lifts a {"data":{"id":...,"attributes":{...}}} envelope
// into a flat attribute map. Payloads without the envelope pass through
// unchanged apart from ID normalization.
func FlattenAPIPayload(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var top map[string]any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if inner, ok := top["data"].(map[string]any); ok {
		top = inner
	}
	flat := make(map[string]any, len(top))
	for k, v := range top {
		if k == "attributes" {
			continue
		}
		flat[k] = v
	}
	if attrs, ok := top["attributes"].(map[string]any); ok {
		for k, v := range attrs {
			flat[k] = v
		}
	}
	if id, ok := flat["id"]; ok {
		flat["id"] = stringifyID(id)
	}
	return flat, nil
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}

// NormalizeExperience strips transient entry IDs while preserving order.
func NormalizeExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	copy(out, in)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

// NormalizeProjects strips transient entry IDs while preserving order.
func NormalizeProjects(in []Project) []Project {
	out := make([]Project, len(in))
	copy(out, in)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

// NormalizeEducation strips transient entry IDs while preserving order.
func NormalizeEducation(in []Education) []Education {
	out := make([]Education, len(in))
	copy(out, in)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

// NormalizeSkills strips transient entry IDs while preserving order.
func NormalizeSkills(in []Skill) []Skill {
	out := make([]Skill, len(in))
	copy(out, in)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

// NormalizeCertifications strips transient entry IDs while preserving order.
func NormalizeCertifications(in []Certification) []Certification {
	out := make([]Certification, len(in))
	copy(out, in)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

// NormalizeInterests drops blank entries; order of the remaining entries is
// preserved.
func NormalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
