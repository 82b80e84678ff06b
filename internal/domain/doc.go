// Package domain contains the core entities of the task service, users and
// tasks, together with their validation rules. Domain types carry no
// persistence or transport concerns; stores and handlers depend on this
// package, never the other way around.
package domain
