package main

import "jobboard/internal/app"

// @title           Job Board API
// @version         1.0
// @description     Job listings, applications, and recruiter tooling.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	app.Run()
}
