package constants

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

// BearerPrefix is the expected scheme in the Authorization header.
const BearerPrefix = "Bearer "
