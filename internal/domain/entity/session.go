package entity

// Session credenciales de la sesión del operador. El token es una credencial
// opaca emitida por el backend; el panel nunca lo decodifica ni lo valida,
// solo lo adjunta como Bearer y lo descarta ante un 401.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
