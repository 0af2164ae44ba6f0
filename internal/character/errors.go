package character

import "errors"

var errRollerRequired = errors.New("dice roller is required")
