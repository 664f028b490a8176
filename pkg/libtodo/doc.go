// Package libtodo is a client implementation of the todoapp REST API.
package libtodo
