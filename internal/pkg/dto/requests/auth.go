package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,alphanum,min=3,max=20"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password"`
	Apartment      int    `json:"apartment" validate:"required,gte=1"`
	Name           string `json:"name" validate:"required,min=2,max=100"`
}

type LoginUser struct {
	Username string `json:"username" validate:"required,alphanum,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}
