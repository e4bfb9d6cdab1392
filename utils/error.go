package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")
var ErrorEmptyTable = errors.New("table has no data rows")
