package version

// Version is the application version reported by the / and /health endpoints.
const Version = "1.0.0"
