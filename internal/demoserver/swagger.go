package demoserver

//go:generate swag init -g internal/demoserver/demo_server.go -o docs

// @title Posty Demo Server API
// @version 0.1
// @description Local stand-in for the jsonplaceholder posts service, with demo control endpoints.
// @contact.name Posty Maintainers
// @contact.url https://github.com/raysh454/posty
// @BasePath /
