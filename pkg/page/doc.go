// Package page defines the handle contracts behaviors attach to. Handles
// stand in for live DOM elements so behavior logic stays testable without a
// browser environment.
package page
