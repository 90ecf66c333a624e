// Package service orchestrates one caller operation per method: normalize the
// filter, fetch names and the backend container concurrently, shape each
// record and assemble the page.
package service
