package validation

import (
	"strings"
)

// PhotoInput is the validated, normalized metadata for a new photo.
type PhotoInput struct {
	Title    string
	Caption  string
	Location string
	People   []string
}

// ValidatePhoto trims the free-text fields and splits the comma-separated
// people string into trimmed, non-empty names. An empty people string yields
// an empty list, never a list containing an empty string. All fields may be
// blank; the image reference is the only required part of a photo and is
// checked by the service.
func ValidatePhoto(title, caption, location, peopleCsv string) PhotoInput {
	return PhotoInput{
		Title:    strings.TrimSpace(title),
		Caption:  strings.TrimSpace(caption),
		Location: strings.TrimSpace(location),
		People:   SplitPeople(peopleCsv),
	}
}

// SplitPeople splits a comma-separated list of names, trimming each segment
// and dropping empty ones. Duplicate names are kept as given.
func SplitPeople(csv string) []string {
	people := []string{}
	for _, segment := range strings.Split(csv, ",") {
		name := strings.TrimSpace(segment)
		if name != "" {
			people = append(people, name)
		}
	}
	return people
}
