package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/kerbaras/pible/pkg/data"
	"github.com/kerbaras/pible/pkg/utils"
	"go.uber.org/zap"
)

const DefaultESVEndpoint = "https://api.esv.org/v3/passage/text/"

// passageTag matches the copyright tag the API appends to every passage.
var passageTag = regexp.MustCompile(`(?s)^\s*(.*?)\s+\(ESV\)\s*$`)

type passageResponse struct {
	Query    string   `json:"query"`
	Passages []string `json:"passages"`
}

// ESV resolves verses through the ESV passage text API.
type ESV struct {
	api    *utils.API
	logger *zap.Logger
}

type ESVOption func(*esvOptions)

type esvOptions struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func WithEndpoint(endpoint string) ESVOption {
	return func(o *esvOptions) {
		if endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

func WithHTTPClient(client *http.Client) ESVOption {
	return func(o *esvOptions) { o.client = client }
}

func WithESVLogger(logger *zap.Logger) ESVOption {
	return func(o *esvOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewESV(opts ...ESVOption) *ESV {
	o := esvOptions{endpoint: DefaultESVEndpoint, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &ESV{
		api:    utils.NewAPI(o.endpoint, utils.WithClient(o.client)),
		logger: o.logger,
	}
}

func (e *ESV) Resolve(ctx context.Context, ref data.Reference, credential string) (string, error) {
	if credential == "" {
		return "", data.ErrMissingCredential
	}

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s %d:%d", ref.Book, ref.Chapter, ref.Verse))
	params.Set("include-passage-references", "false")
	params.Set("include-verse-numbers", "false")
	params.Set("include-first-verse-numbers", "false")
	params.Set("include-footnotes", "false")
	params.Set("include-headings", "false")
	params.Set("include-selahs", "false")
	header := http.Header{}
	header.Set("Authorization", "Token "+credential)

	var resp passageResponse
	if err := e.api.Get(ctx, "", params, header, &resp); err != nil {
		e.logger.Debug("passage request failed", zap.Stringer("ref", ref), zap.Error(err))
		return "", err
	}
	if resp.Passages == nil {
		return "", &data.MalformedResponseError{Reason: "no passages field"}
	}
	if len(resp.Passages) == 0 {
		return "", &data.VerseRangeError{Reference: ref}
	}

	text, err := parsePassage(resp.Passages[0])
	if err != nil {
		return "", err
	}
	e.logger.Debug("resolved verse",
		zap.String("translation", data.ESV.String()),
		zap.Stringer("ref", ref))
	return text, nil
}

// parsePassage strips the trailing "(ESV)" tag from a passage.
func parsePassage(passage string) (string, error) {
	m := passageTag.FindStringSubmatch(passage)
	if m == nil {
		return "", &data.MalformedResponseError{Reason: "passage has no (ESV) tag"}
	}
	return strings.TrimSpace(m[1]), nil
}
