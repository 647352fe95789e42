// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load views, load model,
// build reports, render), decoupled from any specific entrypoint like a CLI.
package app
