// Package service contains the application's business operations, sitting
// between the HTTP layer and the stores. Services validate input, enforce
// ownership scoping, and translate store errors for their callers.
package service
