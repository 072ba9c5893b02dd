//go:build integration

package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type materialBody struct {
	ID               string   `json:"_id"`
	Name             string   `json:"name"`
	Technology       string   `json:"technology"`
	Colors           []string `json:"colors"`
	PricePerGram     float64  `json:"pricePerGram"`
	ApplicationTypes []string `json:"applicationTypes"`
	ImageURL         string   `json:"imageUrl"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type upload struct {
	filename string
	content  []byte
}

func plaFields() map[string][]string {
	return map[string][]string{
		"name":             {"PLA Red"},
		"technology":       {"FDM"},
		"colors":           {"Red"},
		"pricePerGram":     {"0.02"},
		"applicationTypes": {"Prototyping"},
	}
}

func sendMultipart(method, path string, fields map[string][]string, file *upload) *http.Response {
	GinkgoHelper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			Expect(mw.WriteField(key, v)).To(Succeed())
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile("imageUrl", file.filename)
		Expect(err).NotTo(HaveOccurred())
		_, err = fw.Write(file.content)
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(mw.Close()).To(Succeed())

	req, err := http.NewRequestWithContext(ctx, method, api.URL+path, &buf)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	return resp
}

func sendJSON(method, path string, body any) *http.Response {
	GinkgoHelper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, api.URL+path, reader)
	Expect(err).NotTo(HaveOccurred())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	return resp
}

func decode[T any](resp *http.Response, wantStatus int) T {
	GinkgoHelper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(wantStatus), string(raw))

	var out T
	Expect(json.Unmarshal(raw, &out)).To(Succeed())
	return out
}

func createPLA() string {
	GinkgoHelper()

	ack := decode[map[string]any](sendMultipart(http.MethodPost, "/materials", plaFields(), nil), http.StatusOK)
	Expect(ack["acknowledged"]).To(BeTrue())

	id, ok := ack["insertedId"].(string)
	Expect(ok).To(BeTrue())
	Expect(id).To(HaveLen(24))
	return id
}

func storedCount() int64 {
	GinkgoHelper()

	n, err := materialsColl.CountDocuments(ctx, bson.D{})
	Expect(err).NotTo(HaveOccurred())
	return n
}

func stagedFiles() []string {
	GinkgoHelper()

	infos, err := afero.ReadDir(stagingFs, stagingDir)
	Expect(err).NotTo(HaveOccurred())

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

var _ = Describe("Materials API", func() {
	Describe("GET /materials", func() {
		It("returns an empty array when the collection is empty", func() {
			resp := sendJSON(http.MethodGet, "/materials", nil)
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(string(raw))).To(Equal("[]"))
		})

		It("returns every stored material", func() {
			createPLA()
			createPLA()

			list := decode[[]materialBody](sendJSON(http.MethodGet, "/materials", nil), http.StatusOK)
			Expect(list).To(HaveLen(2))
		})
	})

	Describe("POST /materials", func() {
		It("creates a record with normalized fields and no image", func() {
			id := createPLA()

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.ID).To(Equal(id))
			Expect(got.Name).To(Equal("PLA Red"))
			Expect(got.Technology).To(Equal("FDM"))
			Expect(got.Colors).To(Equal([]string{"Red"}))
			Expect(got.PricePerGram).To(BeNumerically("~", 0.02, 1e-9))
			Expect(got.ApplicationTypes).To(Equal([]string{"Prototyping"}))
			Expect(got.ImageURL).To(BeEmpty())
			Expect(imgbbCalls.Load()).To(BeZero())
		})

		It("accepts repeated list keys", func() {
			fields := plaFields()
			fields["colors"] = []string{"Red", " Blue ", ""}

			ack := decode[map[string]any](sendMultipart(http.MethodPost, "/materials", fields, nil), http.StatusOK)
			id, _ := ack["insertedId"].(string)

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.Colors).To(Equal([]string{"Red", "Blue"}))
		})

		It("accepts a JSON body", func() {
			body := map[string]any{
				"name":             gofakeit.ProductName(),
				"technology":       "SLA",
				"colors":           []string{"Grey"},
				"pricePerGram":     0.15,
				"applicationTypes": []string{"Miniatures", "Jewelry"},
			}

			ack := decode[map[string]any](sendJSON(http.MethodPost, "/materials", body), http.StatusOK)
			id, _ := ack["insertedId"].(string)

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.Technology).To(Equal("SLA"))
			Expect(got.ApplicationTypes).To(Equal([]string{"Miniatures", "Jewelry"}))
		})

		It("stores the hosted image url and removes the staged file", func() {
			file := &upload{filename: "pla.png", content: []byte(gofakeit.LoremIpsumSentence(8))}

			ack := decode[map[string]any](sendMultipart(http.MethodPost, "/materials", plaFields(), file), http.StatusOK)
			id, _ := ack["insertedId"].(string)

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.ImageURL).To(Equal("https://i.ibb.co/abc123/pla.png"))
			Expect(imgbbCalls.Load()).To(Equal(int64(1)))
			Expect(stagedFiles()).To(BeEmpty())
		})

		It("rejects a payload with a missing field and stores nothing", func() {
			fields := plaFields()
			delete(fields, "technology")
			file := &upload{filename: "pla.png", content: []byte("png")}

			body := decode[errorBody](sendMultipart(http.MethodPost, "/materials", fields, file), http.StatusBadRequest)
			Expect(body.Message).To(Equal("* All fields are required"))
			Expect(storedCount()).To(BeZero())
			Expect(imgbbCalls.Load()).To(BeZero())
			Expect(stagedFiles()).To(BeEmpty())
		})

		It("rejects an unparsable price", func() {
			fields := plaFields()
			fields["pricePerGram"] = []string{"cheap"}

			body := decode[errorBody](sendMultipart(http.MethodPost, "/materials", fields, nil), http.StatusBadRequest)
			Expect(body.Message).To(Equal("Invalid pricePerGram"))
			Expect(storedCount()).To(BeZero())
		})

		It("treats a numeric zero price in JSON as missing", func() {
			body := map[string]any{
				"name":             "PLA Red",
				"technology":       "FDM",
				"colors":           []string{"Red"},
				"pricePerGram":     0,
				"applicationTypes": []string{"Prototyping"},
			}

			got := decode[errorBody](sendJSON(http.MethodPost, "/materials", body), http.StatusBadRequest)
			Expect(got.Message).To(Equal("* All fields are required"))
			Expect(storedCount()).To(BeZero())
		})

		It("stores nothing when the image host fails", func() {
			imgbbFails.Store(true)
			file := &upload{filename: "pla.png", content: []byte("png")}

			body := decode[errorBody](sendMultipart(http.MethodPost, "/materials", plaFields(), file), http.StatusInternalServerError)
			Expect(body.Message).To(Equal("Failed to upload image"))
			Expect(storedCount()).To(BeZero())
			Expect(stagedFiles()).To(BeEmpty())
		})
	})

	Describe("GET /materials/{id}", func() {
		It("rejects a malformed id", func() {
			body := decode[errorBody](sendJSON(http.MethodGet, "/materials/not-an-id", nil), http.StatusBadRequest)
			Expect(body.Message).To(Equal("Invalid ID"))
		})

		It("returns 404 for an unknown id", func() {
			body := decode[errorBody](sendJSON(http.MethodGet, "/materials/"+bson.NewObjectID().Hex(), nil), http.StatusNotFound)
			Expect(body.Message).To(Equal("Not found"))
		})
	})

	Describe("PUT /materials/{id}", func() {
		It("changes only the submitted fields", func() {
			id := createPLA()

			ack := decode[map[string]any](sendJSON(http.MethodPut, "/materials/"+id, map[string]any{"pricePerGram": "0.03"}), http.StatusOK)
			Expect(ack["matchedCount"]).To(BeNumerically("==", 1))
			Expect(ack["modifiedCount"]).To(BeNumerically("==", 1))

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.PricePerGram).To(BeNumerically("~", 0.03, 1e-9))
			Expect(got.Name).To(Equal("PLA Red"))
			Expect(got.Technology).To(Equal("FDM"))
			Expect(got.Colors).To(Equal([]string{"Red"}))
			Expect(got.ApplicationTypes).To(Equal([]string{"Prototyping"}))
		})

		It("replaces the image through a multipart update", func() {
			id := createPLA()
			file := &upload{filename: "new.jpg", content: []byte("jpg")}

			decode[map[string]any](sendMultipart(http.MethodPut, "/materials/"+id, nil, file), http.StatusOK)

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.ImageURL).To(Equal("https://i.ibb.co/abc123/new.png"))
			Expect(got.Name).To(Equal("PLA Red"))
			Expect(stagedFiles()).To(BeEmpty())
		})

		It("rejects clearing a required field", func() {
			id := createPLA()

			body := decode[errorBody](sendJSON(http.MethodPut, "/materials/"+id, map[string]any{"name": ""}), http.StatusBadRequest)
			Expect(body.Message).To(Equal("Fields cannot be empty"))

			got := decode[materialBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusOK)
			Expect(got.Name).To(Equal("PLA Red"))
		})

		It("rejects a malformed id before uploading", func() {
			file := &upload{filename: "new.jpg", content: []byte("jpg")}

			body := decode[errorBody](sendMultipart(http.MethodPut, "/materials/123", nil, file), http.StatusBadRequest)
			Expect(body.Message).To(Equal("Invalid ID"))
			Expect(imgbbCalls.Load()).To(BeZero())
		})

		It("returns 404 for an unknown id", func() {
			body := decode[errorBody](sendJSON(http.MethodPut, "/materials/"+bson.NewObjectID().Hex(), map[string]any{"name": "x"}), http.StatusNotFound)
			Expect(body.Message).To(Equal("Not found"))
		})
	})

	Describe("DELETE /materials/{id}", func() {
		It("deletes once and then reports not found", func() {
			id := createPLA()

			ack := decode[map[string]any](sendJSON(http.MethodDelete, "/materials/"+id, nil), http.StatusOK)
			Expect(ack["deletedCount"]).To(BeNumerically("==", 1))

			decode[errorBody](sendJSON(http.MethodDelete, "/materials/"+id, nil), http.StatusNotFound)
			decode[errorBody](sendJSON(http.MethodGet, "/materials/"+id, nil), http.StatusNotFound)
		})

		It("rejects a malformed id", func() {
			decode[errorBody](sendJSON(http.MethodDelete, "/materials/zz", nil), http.StatusBadRequest)
		})
	})

	Describe("GET /health", func() {
		It("reports the database as up", func() {
			got := decode[map[string]string](sendJSON(http.MethodGet, "/health", nil), http.StatusOK)
			Expect(got).To(HaveKeyWithValue("status", "SERVING"))
			Expect(got).To(HaveKeyWithValue("database", "up"))
		})
	})
})
