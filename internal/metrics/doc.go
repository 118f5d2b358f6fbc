// Package metrics counts screen loads, navigations and quiz answers with
// prometheus and can expose them over HTTP for kiosk monitoring.
package metrics
