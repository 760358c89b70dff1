// Package mdi models a multiple-document frame: views that are shown either
// as tabs or as floating windows on a desktop, and whose logical state
// (restored, iconified, maximized, selected) survives switching between the
// two. Frame, View and Desktop are not safe for concurrent use; drive them
// from one goroutine.
package mdi
