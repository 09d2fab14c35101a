// Package main provides the entry point for the StaffDesk application.
// It runs a web server using the Fiber framework that lets hotel
// administrators manage employee shift-function assignments through a REST
// API and web interface, plus a set of console commands for day-to-day
// staff operations. The application uses gorm for data persistence.
package main
