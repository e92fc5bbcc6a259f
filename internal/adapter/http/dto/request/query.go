package request

// maxListLimit is the largest page size any listing endpoint will serve.
const maxListLimit = 100

func capLimit(limit int) int {
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
