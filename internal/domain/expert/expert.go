// Package expert defines the advisor roster records and their CSV mapping.
package expert

import (
	"fmt"
	"strconv"
	"strings"
)

// Availability status codes as exported by the roster sheet.
const (
	// StatusAvailable marks a record that may be offered to the model.
	StatusAvailable = 0
)

// Fixed column positions in the roster CSV export.
const (
	colLastName = iota
	colFirstName
	colYears
	colField
	colSpecialty
	colDescriptor
	colReserved
	colStatus
	colGender
	colRegion
	colRecognizable
)

// Record describes a single advisor from the roster sheet.
// Identity is positional; rows carry no unique key beyond row order.
type Record struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Years        string `json:"years"`
	Field        string `json:"field"`
	Specialty    string `json:"specialty"`
	Descriptor   string `json:"descriptor"`
	Status       int    `json:"status"`
	Gender       string `json:"gender"`
	Region       string `json:"region"`
	Recognizable string `json:"recognizable"`
}

// Name returns the display name used in prompts.
func (r Record) Name() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Summary renders the one-line pool entry embedded in the team prompt.
func (r Record) Summary() string {
	return fmt.Sprintf("%s (%s) – %s, %s", r.Name(), r.Years, r.Field, r.Descriptor)
}

// ParseRow maps a raw CSV line onto a Record. The export uses plain comma
// separation with no quoted-field escaping, so a naive split matches the
// source format. Missing trailing columns default to empty/zero.
func ParseRow(line string) Record {
	cols := strings.Split(line, ",")
	at := func(i int) string {
		if i < len(cols) {
			return strings.TrimSpace(cols[i])
		}
		return ""
	}

	// An unparseable or absent status reads as available. The sheet has
	// always encoded exclusion as an explicit non-zero code, so blank
	// cells fall through to the available pool.
	status, err := strconv.Atoi(at(colStatus))
	if err != nil {
		status = StatusAvailable
	}

	return Record{
		LastName:     at(colLastName),
		FirstName:    at(colFirstName),
		Years:        at(colYears),
		Field:        at(colField),
		Specialty:    at(colSpecialty),
		Descriptor:   at(colDescriptor),
		Status:       status,
		Gender:       at(colGender),
		Region:       at(colRegion),
		Recognizable: at(colRecognizable),
	}
}

// Retain reports whether a parsed row belongs in the in-memory roster.
func Retain(r Record) bool {
	return r.FirstName != "" && r.Status == StatusAvailable
}

// ParseCSV converts a full CSV export into the retained roster. The first
// line is a header and is skipped; blank lines are ignored.
func ParseCSV(data string) []Record {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil
	}

	records := make([]Record, 0, len(lines))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r := ParseRow(line)
		if Retain(r) {
			records = append(records, r)
		}
	}
	return records
}

// RenderPool renders the retained roster as the newline-joined pool block
// embedded into the team-construction prompt.
func RenderPool(records []Record) string {
	if len(records) == 0 {
		return "(no experts currently available)"
	}
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(r.Summary())
	}
	return b.String()
}
