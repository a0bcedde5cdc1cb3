// Package domain defines the core business entities and their validation
// rules. Entities carry no persistence or transport concerns; those live in
// the store and api packages respectively.
package domain
