package medicines

import "errors"

var ErrMedicineNotFound = errors.New("medicine not found")
