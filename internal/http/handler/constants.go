package handler

const (
	jsonKeyError = "error"
	jsonKeyToken = "token"

	paramID = "id"

	queryParentID = "parentId"
	queryPage     = "page"
	querySize     = "size"

	basicScheme     = "Basic "
	basicCredsParts = 2

	rootParentWire = 0

	defaultContentType = "application/octet-stream"
)

const (
	msgUnauthorized            = "Unauthorized"
	msgNotFound                = "Not found"
	msgAlreadyExist            = "Already exist"
	msgParentNotFound          = "Parent not found"
	msgInvalidRequestBody      = "invalid request body"
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgCreateUserFail          = "failed to create user"
	msgCreateFileFail          = "failed to create file"
)
