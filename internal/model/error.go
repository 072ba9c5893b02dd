package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")   // 400
	ErrMaterialNotFound = errors.New("material not found") // 404
	ErrImageUpload      = errors.New("image upload failed")

	ErrInvalidID      = fmt.Errorf("%w: malformed material id", ErrInvalidArgument)
	ErrFieldsRequired = fmt.Errorf("%w: all fields are required", ErrInvalidArgument)
	ErrEmptyField     = fmt.Errorf("%w: field cannot be empty", ErrInvalidArgument)
	ErrInvalidPrice   = fmt.Errorf("%w: pricePerGram must be a number", ErrInvalidArgument)
	ErrFileTooLarge   = fmt.Errorf("%w: file exceeds upload size limit", ErrInvalidArgument)
)
