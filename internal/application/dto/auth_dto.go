package dto

// LoginRequest credenciales que el operador envía al panel; viajan tal cual
// al backend, que es quien las verifica.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse estado actual de la sesión del panel. Username viaja
// siempre, vacío en estado Anónimo, para que la vista no herede un nombre
// rancio de una respuesta anterior.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}
