package v1

// BasePath for version 1 of the REST API
const BasePath = "/api/v1/cipher-lab"
