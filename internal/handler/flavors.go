package handler // handler package contains the flavor API handlers

import (
    "context"       // context bounds event publishing
    "encoding/json" // json decodes request bodies with type information intact
    "errors"        // errors distinguishes an empty body from a malformed one
    "io"            // io.EOF marks an empty JSON body
    "mime"          // mime parses the request Content-Type
    "net/http"      // http provides status code constants
    "strconv"       // strconv parses path identifiers
    "strings"       // strings offers trimming utilities
    "time"          // time bounds event publishing

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/iliyamo/ice-cream-parlor/internal/model" // model holds the Flavor entity
    "github.com/iliyamo/ice-cream-parlor/internal/view"  // view renders the HTML listing
)

// publishTimeout bounds how long a create request waits on the broker.
const publishTimeout = 3 * time.Second

// FlavorHandler bundles the dependencies of the /flavors endpoints.
type FlavorHandler struct {
    Flavors FlavorStore    // Flavors provides flavor persistence
    Events  EventPublisher // Events announces newly stored flavors
}

// NewFlavorHandler constructs a FlavorHandler and panics if the store is nil.
// A nil publisher is allowed and means events are not published.
func NewFlavorHandler(store FlavorStore, events EventPublisher) *FlavorHandler {
    if store == nil {
        panic("nil store passed to NewFlavorHandler")
    }
    return &FlavorHandler{Flavors: store, Events: events}
}

// ListFlavors handles GET /flavors.  The Accept header decides between a
// JSON array and the HTML listing page.
func (h *FlavorHandler) ListFlavors(c echo.Context) error {
    rep := negotiate(c.Request().Header.Get(echo.HeaderAccept)) // decide the response shape once
    c.Response().Header().Add(echo.HeaderVary, echo.HeaderAccept) // caches must key on Accept

    flavors, err := h.Flavors.List(c.Request().Context()) // newest first
    if err != nil {
        c.Logger().Errorf("list flavors: %v", err) // details stay in the log
        return c.JSON(http.StatusInternalServerError, errorBody("Failed to list flavors"))
    }
    if flavors == nil {
        flavors = []*model.Flavor{} // always encode an array, never null
    }

    if rep == RepresentationJSON {
        return c.JSON(http.StatusOK, flavors) // API clients get the raw array
    }
    if err := c.Render(http.StatusOK, view.FlavorsPage, view.FlavorList{Flavors: flavors}); err != nil {
        c.Logger().Errorf("render flavors page: %v", err)
        return c.JSON(http.StatusInternalServerError, errorBody("Failed to list flavors"))
    }
    return nil
}

// CreateFlavor handles POST /flavors.  It accepts a JSON or a form body;
// form submissions are redirected back to the listing page, API clients get
// the stored flavor with 201.
func (h *FlavorHandler) CreateFlavor(c echo.Context) error {
    in, err := readFlavorInput(c) // form or JSON body
    if err != nil {
        return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
    }
    name, ok := in.Name.(string) // name must be a string
    if !ok {
        return c.JSON(http.StatusBadRequest, errorBody("name is required"))
    }
    name = strings.TrimSpace(name)
    if name == "" { // and non-empty once trimmed
        return c.JSON(http.StatusBadRequest, errorBody("name is required"))
    }

    ctx := c.Request().Context()
    flavor, err := h.Flavors.Create(ctx, name, descriptionText(in.Description)) // store assigns id and created_at
    if err != nil {
        c.Logger().Errorf("add flavor: %v", err)
        return c.JSON(http.StatusInternalServerError, errorBody("Failed to add flavor"))
    }

    if h.Events != nil {
        // the row is committed, so the event must not die with the client connection
        pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
        if err := h.Events.PublishFlavorCreated(pctx, flavor); err != nil {
            c.Logger().Warnf("publish flavor.created id=%d: %v", flavor.ID, err)
        }
        cancel()
    }

    if in.Form {
        return c.Redirect(http.StatusSeeOther, "/flavors") // browsers land on the listing
    }
    return c.JSON(http.StatusCreated, flavor) // return the stored record
}

// GetFlavor handles GET /flavors/:id and returns a single flavor as JSON.
func (h *FlavorHandler) GetFlavor(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64) // ids are positive integers
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, errorBody("invalid id"))
    }
    flavor, found, err := h.Flavors.GetByID(c.Request().Context(), id) // single row lookup
    if err != nil {
        c.Logger().Errorf("get flavor %d: %v", id, err)
        return c.JSON(http.StatusInternalServerError, errorBody("Failed to get flavor"))
    }
    if !found {
        return c.JSON(http.StatusNotFound, errorBody("flavor not found"))
    }
    return c.JSON(http.StatusOK, flavor)
}

// flavorInput holds the raw submitted values.  Name and Description keep
// their decoded JSON types so that a non-string name can be rejected.
type flavorInput struct {
    Name        any  // Name is the submitted name before validation
    Description any  // Description is the submitted description before conversion
    Form        bool // Form reports whether the body came from an HTML form
}

// bodyKind classifies the request Content-Type.
type bodyKind int

const (
    bodyOther     bodyKind = iota // unknown or missing content type
    bodyForm                      // application/x-www-form-urlencoded
    bodyMultipart                 // multipart/form-data
    bodyJSON                      // application/json or any +json type
)

// requestBodyKind parses the Content-Type once.  ParseMediaType lowercases
// the media type, so the comparison is case-insensitive.
func requestBodyKind(c echo.Context) bodyKind {
    mt, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
    if err != nil {
        return bodyOther // missing or unparsable header
    }
    switch {
    case mt == echo.MIMEApplicationForm:
        return bodyForm
    case mt == echo.MIMEMultipartForm:
        return bodyMultipart
    case mt == echo.MIMEApplicationJSON, strings.HasSuffix(mt, "+json"):
        return bodyJSON
    }
    return bodyOther
}

// readFlavorInput decodes the request body.  Form fields are always
// strings; JSON keeps numbers as json.Number.  An empty JSON body, a
// non-object JSON value or any other content type yields an input with no
// fields.  Data after the JSON value is an error.
func readFlavorInput(c echo.Context) (flavorInput, error) {
    kind := requestBodyKind(c)
    var params map[string][]string
    switch kind {
    case bodyForm:
        values, err := c.FormParams()
        if err != nil {
            return flavorInput{Form: true}, err
        }
        params = values
    case bodyMultipart:
        // the multipart reader matches the header case-insensitively, echo's prefix check does not
        form, err := c.MultipartForm()
        if err != nil {
            return flavorInput{Form: true}, err
        }
        params = form.Value
    case bodyOther:
        return flavorInput{}, nil // nothing we understand, so no fields
    }

    if kind != bodyJSON {
        in := flavorInput{Form: true}
        if v, ok := params["name"]; ok && len(v) > 0 {
            in.Name = v[0] // first value wins
        }
        if v, ok := params["description"]; ok && len(v) > 0 {
            in.Description = v[0]
        }
        return in, nil
    }

    var in flavorInput
    var body any
    dec := json.NewDecoder(c.Request().Body)
    dec.UseNumber() // keep numbers textual for descriptionText
    if err := dec.Decode(&body); err != nil {
        if errors.Is(err, io.EOF) {
            return in, nil // empty body
        }
        return in, err
    }
    if _, err := dec.Token(); !errors.Is(err, io.EOF) {
        return in, errors.New("unexpected data after JSON value") // trailing garbage
    }
    if obj, ok := body.(map[string]any); ok {
        in.Name = obj["name"]
        in.Description = obj["description"]
    }
    return in, nil
}

// descriptionText converts a submitted description into its stored form.
// Strings are trimmed; numbers and true keep their text; null, false, zero,
// objects, arrays and blank strings mean no description.
func descriptionText(v any) *string {
    var s string
    switch t := v.(type) {
    case string:
        s = t
    case json.Number:
        f, err := t.Float64()
        if err != nil {
            s = t.String() // out of float range, keep the literal
            break
        }
        if f == 0 {
            return nil // zero counts as no description
        }
        s = strconv.FormatFloat(f, 'f', -1, 64) // 1e2 is stored as "100"
    case bool:
        if !t {
            return nil
        }
        s = "true"
    default:
        return nil // null, objects and arrays
    }
    s = strings.TrimSpace(s)
    if s == "" {
        return nil
    }
    return &s
}
