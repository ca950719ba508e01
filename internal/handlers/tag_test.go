package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/journali/journal-api/internal/auth"
	"github.com/journali/journal-api/internal/constants"
	"github.com/journali/journal-api/internal/database"
	"github.com/journali/journal-api/internal/dto"
	"github.com/journali/journal-api/internal/middleware"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/repository"
	"github.com/journali/journal-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TagHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenService

	alice      uuid.UUID
	aliceToken string
	bob        uuid.UUID
	bobToken   string
}

// SetupTest runs before each test
func (suite *TagHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Page{},
		&models.Tag{},
		&models.TagItem{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	suite.tokens = auth.NewTokenService("test-secret", constants.TokenIssuer, time.Hour)

	itemRepo := repository.NewItemRepository(suite.db)
	tagService := services.NewTagService(repository.NewTagRepository(suite.db), itemRepo)
	pageService := services.NewCrudService(itemRepo, repository.NewPageStore(suite.db))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	api := suite.router.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(suite.tokens))
	RegisterItemCrudRoutes(protected, "/pages", NewItemCrudHandler(pageService))
	tagHandler := NewTagHandler(tagService)
	protected.GET("/tags", tagHandler.List)
	protected.POST("/tags", tagHandler.Create)
	protected.PATCH("/tags/:id", tagHandler.Update)
	protected.DELETE("/tags/:id", tagHandler.Delete)
	protected.PATCH("/tags/:id/items", tagHandler.AddItems)
	protected.DELETE("/tags/:id/items", tagHandler.RemoveItems)

	suite.alice, suite.aliceToken = suite.createTestUser("alice")
	suite.bob, suite.bobToken = suite.createTestUser("bob")
}

// TearDownTest runs after each test
func (suite *TagHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TagHandlerTestSuite) createTestUser(username string) (uuid.UUID, string) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(user).Error)

	token, err := suite.tokens.Issue(user.ID)
	suite.Require().NoError(err)
	return user.ID, token
}

func (suite *TagHandlerTestSuite) do(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TagHandlerTestSuite) createTag(name, color, token string) models.Tag {
	w := suite.do(http.MethodPost, "/api/tags", map[string]string{
		"name":  name,
		"color": color,
	}, token)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var tag models.Tag
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tag))
	return tag
}

func (suite *TagHandlerTestSuite) createPage(title, token string) models.Page {
	w := suite.do(http.MethodPost, "/api/pages", map[string]string{"title": title}, token)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var page models.Page
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	return page
}

func (suite *TagHandlerTestSuite) listTags(token string) []dto.TagDTO {
	w := suite.do(http.MethodGet, "/api/tags", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var tags []dto.TagDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tags))
	return tags
}

func (suite *TagHandlerTestSuite) TestAttachAndDetachItems() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)
	page := suite.createPage("Project notes", suite.aliceToken)

	refs := []models.ItemRef{{ID: page.ID, ItemType: models.KindPage}}

	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String()+"/items", refs, suite.aliceToken)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	tags := suite.listTags(suite.aliceToken)
	suite.Require().Len(tags, 1)
	suite.Equal("work", tags[0].Name)
	suite.Require().Len(tags[0].Items, 1)
	suite.Equal(page.ID, tags[0].Items[0].ID)
	suite.Equal(models.KindPage, tags[0].Items[0].ItemType)

	w = suite.do(http.MethodDelete, "/api/tags/"+tag.ID.String()+"/items", refs, suite.aliceToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	tags = suite.listTags(suite.aliceToken)
	suite.Require().Len(tags, 1)
	suite.Empty(tags[0].Items)
}

func (suite *TagHandlerTestSuite) TestAttachIsIdempotent() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)
	page := suite.createPage("Notes", suite.aliceToken)
	refs := []models.ItemRef{{ID: page.ID, ItemType: models.KindPage}}

	for i := 0; i < 2; i++ {
		w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String()+"/items", refs, suite.aliceToken)
		suite.Require().Equal(http.StatusOK, w.Code)
	}

	tags := suite.listTags(suite.aliceToken)
	suite.Require().Len(tags, 1)
	suite.Len(tags[0].Items, 1)
}

func (suite *TagHandlerTestSuite) TestAttachOtherUsersItem() {
	tag := suite.createTag("sneaky", "#000000", suite.bobToken)
	page := suite.createPage("Alice's page", suite.aliceToken)

	refs := []models.ItemRef{{ID: page.ID, ItemType: models.KindPage}}
	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String()+"/items", refs, suite.bobToken)
	suite.Equal(http.StatusNotFound, w.Code)

	// Nothing was attached.
	tags := suite.listTags(suite.bobToken)
	suite.Require().Len(tags, 1)
	suite.Empty(tags[0].Items)
}

func (suite *TagHandlerTestSuite) TestAttachToOtherUsersTag() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)
	page := suite.createPage("Bob's page", suite.bobToken)

	refs := []models.ItemRef{{ID: page.ID, ItemType: models.KindPage}}
	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String()+"/items", refs, suite.bobToken)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TagHandlerTestSuite) TestAttachEmptyRefs() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)

	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String()+"/items", []models.ItemRef{}, suite.aliceToken)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TagHandlerTestSuite) TestUpdateTag() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)

	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String(), map[string]string{
		"color": "#00ff00",
	}, suite.aliceToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated models.Tag
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("#00ff00", updated.Color)
	suite.Equal("work", updated.Name)
}

func (suite *TagHandlerTestSuite) TestUpdateOtherUsersTag() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)

	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String(), map[string]string{
		"name": "stolen",
	}, suite.bobToken)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TagHandlerTestSuite) TestDeleteTagRemovesAssociations() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)
	page := suite.createPage("Notes", suite.aliceToken)

	refs := []models.ItemRef{{ID: page.ID, ItemType: models.KindPage}}
	w := suite.do(http.MethodPatch, "/api/tags/"+tag.ID.String()+"/items", refs, suite.aliceToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/tags/"+tag.ID.String(), nil, suite.aliceToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.Empty(suite.listTags(suite.aliceToken))

	var count int64
	suite.db.Model(&models.TagItem{}).Where("tag_id = ?", tag.ID).Count(&count)
	suite.EqualValues(0, count)

	// The tagged item itself is untouched.
	w = suite.do(http.MethodGet, "/api/pages/"+page.ID.String(), nil, suite.aliceToken)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TagHandlerTestSuite) TestDeleteOtherUsersTag() {
	tag := suite.createTag("work", "#ff0000", suite.aliceToken)

	w := suite.do(http.MethodDelete, "/api/tags/"+tag.ID.String(), nil, suite.bobToken)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.Len(suite.listTags(suite.aliceToken), 1)
}

func (suite *TagHandlerTestSuite) TestListOnlyOwnTags() {
	suite.createTag("work", "#ff0000", suite.aliceToken)
	suite.createTag("home", "#0000ff", suite.bobToken)

	tags := suite.listTags(suite.aliceToken)
	suite.Require().Len(tags, 1)
	suite.Equal("work", tags[0].Name)
}

func (suite *TagHandlerTestSuite) TestRequiresAuthentication() {
	w := suite.do(http.MethodGet, "/api/tags", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestTagHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TagHandlerTestSuite))
}
