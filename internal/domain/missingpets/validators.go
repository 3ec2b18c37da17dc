package missingpets

import (
	"regexp"

	"pet-lost-and-found/internal/validate"
)

var (
	typePattern   = regexp.MustCompile(`^(dog|cat|bird|rabbit|other)$`)
	statusPattern = regexp.MustCompile(`^(missing|found)$`)
	// Tipos de imagen aceptados; el resto se rechaza en validación,
	// no en el handler.
	photoPattern = regexp.MustCompile(`(?i)\.(jpe?g|png|gif)$`)
)

func idParamRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("id", "Id is required"),
		validate.Numeric("id", "Id must be a number"),
	}
}

// createRules: el userId no se valida porque no se confía del body;
// lo pone el handler desde el token.
func createRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("name", "Name is required"),
		validate.Required("type", "Type is required"),
		validate.Matches("type", typePattern, "Invalid type"),
		validate.Required("colour", "Colour is required"),
		validate.Required("lostDate", "Lost date is required"),
		validate.Date("lostDate", "Invalid lost date"),
		validate.Required("lastSeenLocation", "Last seen location is required"),
		validate.Required("comment", "Comment is required"),
		validate.Required("status", "Status is required"),
		validate.Matches("status", statusPattern, "Invalid status"),
		validate.Optional(validate.Date("foundDate", "Invalid found date")),
		validate.Optional(validate.Matches("photo", photoPattern, "Only image files are allowed")),
	}
}

func updateRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("id", "Id is required"),
		validate.Numeric("id", "Id must be a number"),
		validate.Optional(validate.Required("name", "Name is required")),
		validate.Optional(validate.Matches("type", typePattern, "Invalid type")),
		validate.Optional(validate.Required("colour", "Colour is required")),
		validate.Optional(validate.Date("lostDate", "Invalid lost date")),
		validate.Optional(validate.Required("lastSeenLocation", "Last seen location is required")),
		validate.Optional(validate.Required("comment", "Comment is required")),
		validate.Optional(validate.Matches("status", statusPattern, "Invalid status")),
		validate.Optional(validate.Date("foundDate", "Invalid found date")),
		validate.Optional(validate.Matches("photo", photoPattern, "Only image files are allowed")),
	}
}
