package pastor

type CreatePastorRequest struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	WelcomeMessage string `json:"welcomeMessage"`
	Image          string `json:"image"`
	IsActive       *bool  `json:"isActive"`
}

type UpdatePastorRequest struct {
	Name           *string `json:"name"`
	Title          *string `json:"title"`
	WelcomeMessage *string `json:"welcomeMessage"`
	Image          *string `json:"image"`
	IsActive       *bool   `json:"isActive"`
}
