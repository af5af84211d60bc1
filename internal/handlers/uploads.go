package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tableside/backend/internal/config"
	"tableside/backend/internal/firebase"
	"tableside/backend/internal/httpjson"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	credentialspb "cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/storage"
)

// Uploads hands out V4 signed PUT URLs so the web client can push menu
// and restaurant images straight to the bucket without routing bytes
// through this service.
type Uploads struct {
	cfg     config.Config
	clients *firebase.Clients
	iam     *credentials.IamCredentialsClient
}

func NewUploads(cfg config.Config, clients *firebase.Clients) *Uploads {
	// IAM client is optional; only needed for signed URLs.
	iamClient, _ := credentials.NewIamCredentialsClient(context.Background())
	return &Uploads{cfg: cfg, clients: clients, iam: iamClient}
}

type signedURLReq struct {
	ObjectPath     string `json:"objectPath"` // e.g. "menu/espresso.jpg"
	ContentType    string `json:"contentType,omitempty"`
	ExpiresSeconds int64  `json:"expiresSeconds,omitempty"` // default 900
}

type signedURLResp struct {
	URL       string `json:"url"`
	Method    string `json:"method"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Image objects live under a fixed set of prefixes; anything else is
// rejected so a signed URL can never touch backups or exports.
var allowedPrefixes = []string{"menu/", "branding/"}

func (h *Uploads) Sign(w http.ResponseWriter, r *http.Request) {
	var req signedURLReq
	if err := httpjson.Read(r, &req); err != nil || req.ObjectPath == "" {
		httpjson.Error(w, http.StatusBadRequest, "objectPath is required")
		return
	}

	ok := false
	for _, p := range allowedPrefixes {
		if strings.HasPrefix(req.ObjectPath, p) {
			ok = true
			break
		}
	}
	if !ok || strings.Contains(req.ObjectPath, "..") {
		httpjson.Error(w, http.StatusBadRequest, "objectPath must be under menu/ or branding/")
		return
	}

	url, exp, err := h.signedURL(r.Context(), req.ObjectPath, req.ContentType, req.ExpiresSeconds)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, signedURLResp{URL: url, Method: "PUT", ExpiresAt: exp.Unix()})
}

func (h *Uploads) signedURL(ctx context.Context, objectPath, contentType string, expiresSeconds int64) (string, time.Time, error) {
	if !h.clients.Enabled() || h.cfg.StorageBucket == "" {
		return "", time.Time{}, fmt.Errorf("storage is not configured")
	}
	if h.cfg.SignedURLServiceAccountEmail == "" {
		return "", time.Time{}, fmt.Errorf("SIGNED_URL_SERVICE_ACCOUNT_EMAIL is not set")
	}
	if h.iam == nil {
		return "", time.Time{}, fmt.Errorf("IAM credentials client not available")
	}
	if expiresSeconds <= 0 || expiresSeconds > 3600 {
		expiresSeconds = 900
	}
	exp := time.Now().Add(time.Duration(expiresSeconds) * time.Second)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "PUT",
		Expires:        exp,
		ContentType:    contentType,
		GoogleAccessID: h.cfg.SignedURLServiceAccountEmail,
		SignBytes: func(b []byte) ([]byte, error) {
			name := fmt.Sprintf("projects/-/serviceAccounts/%s", h.cfg.SignedURLServiceAccountEmail)
			resp, err := h.iam.SignBlob(ctx, &credentialspb.SignBlobRequest{
				Name:    name,
				Payload: b,
			})
			if err != nil {
				return nil, err
			}
			return resp.SignedBlob, nil
		},
	}

	url, err := storage.SignedURL(h.cfg.StorageBucket, objectPath, opts)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign url (check service account + permissions): %v", err)
	}
	return url, exp, nil
}
