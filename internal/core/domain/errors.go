package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrZoneNotFound     = errors.New("zone not found")
	ErrTemplateNotFound = errors.New("recurring template not found")
	ErrHierarchyCycle   = errors.New("task hierarchy cycle")
	ErrInvalidSnapshot  = errors.New("invalid workspace snapshot")
)
