package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"diet-diary/internal/utils/form"

	"github.com/gofiber/fiber/v2"
)

// bind reads the request fields into dst. Query parameters are read first
// and body fields override them.
func bind(c *fiber.Ctx, binder *form.Binder, dst any) error {
	values, err := requestValues(c)
	if err != nil {
		return err
	}
	return binder.Bind(values, dst)
}

func requestValues(c *fiber.Ctx) (url.Values, error) {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	body, err := bodyValues(c)
	if err != nil {
		return nil, err
	}
	for key, vs := range body {
		values[key] = vs
	}
	return values, nil
}

func bodyValues(c *fiber.Ctx) (url.Values, error) {
	body := url.Values{}
	if len(c.Body()) == 0 {
		return body, nil
	}

	ctype := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ctype, fiber.MIMEApplicationJSON):
		var raw map[string]any
		if err := c.App().Config().JSONDecoder(c.Body(), &raw); err != nil {
			return nil, err
		}
		for key, v := range raw {
			s, ok, err := jsonScalar(c, v)
			if err != nil {
				return nil, err
			}
			if ok {
				body.Set(key, s)
			}
		}
	case strings.HasPrefix(ctype, fiber.MIMEApplicationForm):
		c.Context().PostArgs().VisitAll(func(key, value []byte) {
			body.Add(string(key), string(value))
		})
	case strings.HasPrefix(ctype, fiber.MIMEMultipartForm):
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for key, vs := range mf.Value {
			body[key] = append(body[key], vs...)
		}
	}
	return body, nil
}

// jsonScalar renders a decoded JSON value the way it would arrive in a form.
// null counts as absent.
func jsonScalar(c *fiber.Ctx, v any) (string, bool, error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	default:
		b, err := c.App().Config().JSONEncoder(v)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	}
}
