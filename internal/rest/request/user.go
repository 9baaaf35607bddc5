package request

type Register struct {
	Name     string `json:"name" binding:"required,max=45"`
	Username string `json:"username" binding:"required,max=45"`
	Password string `json:"password" binding:"required,min=8"`
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
