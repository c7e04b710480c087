package get_monthly_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.Year < 1 || req.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, req.Year)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, req.Month)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && req.Full {
		return fmt.Errorf("%w: staffID and full are mutually exclusive", ErrInvalidInput)
	}

	return nil
}
