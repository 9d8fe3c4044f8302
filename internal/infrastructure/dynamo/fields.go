package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldEnable       = "enable"
	fieldStatus       = "status"
	fieldDeletedAt    = "deleted_at"
	fieldRefreshToken = "refresh_token"
	fieldRefreshExp   = "refresh_token_expires_at"
	fieldUpdatedAt    = "updated_at"
)
