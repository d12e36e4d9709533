package services

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRoadmapNotFound  = errors.New("roadmap not found")
	ErrProgressNotFound = errors.New("progress data not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoCurrentTask    = errors.New("no current task to complete")
	ErrWeekNotFound     = errors.New("current week not found")
	ErrUserExists       = errors.New("user already has a roadmap")
)
