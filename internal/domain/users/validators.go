package users

import "pet-lost-and-found/internal/validate"

// Reglas declarativas por campo; se evalúan todas y las violaciones se
// juntan en una sola respuesta 422.

func idParamRules() []validate.Rule {
	return []validate.Rule{
		validate.Required("id", "id is required"),
		validate.Numeric("id", "id must be numeric"),
	}
}

func createRules(emailTaken validate.LookupFunc) []validate.Rule {
	return []validate.Rule{
		validate.Required("name", "Name is required"),
		validate.Required("email", "Email is required"),
		validate.Email("email", "Invalid email"),
		validate.Length("password", 6, 8, "The password length must be 6-8 characters"),
		validate.Unique("email", "Email already exists", emailTaken),
	}
}

func updateRules(emailTaken validate.LookupFunc) []validate.Rule {
	return []validate.Rule{
		validate.Required("id", "User ID is required"),
		validate.Numeric("id", "User ID must be a number"),
		validate.Optional(validate.Required("name", "Name is required")),
		validate.Optional(validate.Email("email", "Invalid email")),
		validate.Optional(validate.Length("password", 6, 120, "The password length must be 6-120 characters")),
		validate.Optional(validate.Unique("email", "Email already exists", emailTaken)),
	}
}
