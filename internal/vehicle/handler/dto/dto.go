package dto

// Oldest model year accepted by the registry.
const minYear = 1900

type VehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// Validate runs every check and collects the failures in order; an empty
// slice means the request is valid.
func (r VehicleRequest) Validate() []string {
	messages := make([]string, 0)

	if r.Name == "" {
		messages = append(messages, "the name field cannot be empty")
	}
	if r.Brand == "" {
		messages = append(messages, "the brand field cannot be empty")
	}
	if r.Year < minYear {
		messages = append(messages, "only vehicles from year 1900 onwards are accepted")
	}

	return messages
}

type ValidationErrors struct {
	Messages []string `json:"messages"`
}
