package main

import (
	"github.com/taskflow/taskflow-api/app"
	_ "github.com/taskflow/taskflow-api/docs"
)

// @title TaskFlow API
// @version 1.0.0
// @description API REST para gestión de tareas con autenticación JWT.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token JWT con el prefijo "Bearer "
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
