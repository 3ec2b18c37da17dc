package messages

import "pet-lost-and-found/internal/validate"

func idParamRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("id", "Message ID is required"),
		validate.Numeric("id", "Message ID must be a number"),
	}
}

// createRules: el userId sale del token, no del body.
func createRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("missingPetId", "Missing Pet ID is required"),
		validate.Numeric("missingPetId", "Missing Pet ID must be a number"),
		validate.Required("comment", "Comment is required"),
	}
}

func updateRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("id", "Message ID is required"),
		validate.Numeric("id", "Message ID must be a number"),
		validate.Optional(validate.Numeric("missingPetId", "Missing Pet ID must be a number")),
		validate.Optional(validate.Required("comment", "Comment is required")),
	}
}
