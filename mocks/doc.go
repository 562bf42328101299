// Package mocks holds gomock implementations of waypoint's store interfaces.
package mocks

//go:generate mockgen -destination=user_finder.go -package=mocks github.com/xy-planning-network/waypoint/settings UserFinder
//go:generate mockgen -destination=conferencing.go -package=mocks github.com/xy-planning-network/waypoint/conferencing UserIDFinder,AppFinder
