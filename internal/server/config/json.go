package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/flagx"
	"github.com/dmitrijs2005/hoopaconnect/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
// Absent keys leave the corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	MetricsAddr                  *string         `json:"metrics_addr"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	ResetTokenValidityDuration   *timex.Duration `json:"reset_token_validity_duration"`
	ResetRequestsPerMinute       *int            `json:"reset_requests_per_minute"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	S3PublicBaseURL              *string         `json:"s3_public_base_url"`
	MarketplaceBucket            *string         `json:"marketplace_bucket"`
	AvatarBucket                 *string         `json:"avatar_bucket"`
	IDCardBucket                 *string         `json:"id_card_bucket"`
	UploadURLValidity            *timex.Duration `json:"upload_url_validity"`
	SignedURLValidity            *timex.Duration `json:"signed_url_validity"`
}

// parseJson overlays values from the JSON file named by -c/-config.
// Without the flag nothing is loaded. An unreadable or invalid file panics:
// the server must not start on a half-applied config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath()

	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.ResetTokenValidityDuration, c.ResetTokenValidityDuration)
	if c.ResetRequestsPerMinute != nil {
		config.ResetRequestsPerMinute = *c.ResetRequestsPerMinute
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setString(&config.MarketplaceBucket, c.MarketplaceBucket)
	setString(&config.AvatarBucket, c.AvatarBucket)
	setString(&config.IDCardBucket, c.IDCardBucket)
	setDuration(&config.UploadURLValidity, c.UploadURLValidity)
	setDuration(&config.SignedURLValidity, c.SignedURLValidity)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
