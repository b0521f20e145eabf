package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProductPage = `
<html>
<body>
	<div id="title_feature_div">
		<span id="productTitle">  Stainless Steel Water Bottle 32oz Insulated Flask  </span>
	</div>
	<div id="feature-bullets">
		<ul>
			<li><span class="a-list-item">Keeps drinks cold for 24 hours</span></li>
			<li><span class="a-list-item">Leak-proof lid with carry loop</span></li>
			<li><span class="a-list-item">See more product details</span></li>
		</ul>
	</div>
	<div id="productDescription">
		<p>Our bottle is built from food-grade stainless steel.</p>
		<p>Double-wall vacuum insulation keeps temperature stable.</p>
	</div>
</body>
</html>`

func TestExtractListing_FullPage(t *testing.T) {
	fields, err := ExtractListing(sampleProductPage)
	require.NoError(t, err)

	assert.Equal(t, "Stainless Steel Water Bottle 32oz Insulated Flask", fields.Title)
	require.Len(t, fields.BulletPoints, 2)
	assert.Equal(t, "Keeps drinks cold for 24 hours", fields.BulletPoints[0])
	assert.Equal(t, "Leak-proof lid with carry loop", fields.BulletPoints[1])
	require.Len(t, fields.Description, 2)
	assert.Contains(t, fields.Description[0], "food-grade stainless steel")
	assert.Nil(t, fields.BackendKeywords)
}

func TestExtractListing_TitleFallbackSelector(t *testing.T) {
	html := `<html><body><div id="title"><span>Fallback Title</span></div></body></html>`

	fields, err := ExtractListing(html)
	require.NoError(t, err)
	assert.Equal(t, "Fallback Title", fields.Title)
}

func TestExtractListing_BulletsWithoutInnerSpan(t *testing.T) {
	html := `
	<html><body>
		<div id="feature-bullets"><ul>
			<li>Plain bullet one</li>
			<li>Plain bullet two</li>
		</ul></div>
	</body></html>`

	fields, err := ExtractListing(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"Plain bullet one", "Plain bullet two"}, fields.BulletPoints)
}

func TestExtractListing_NoContent(t *testing.T) {
	_, err := ExtractListing(`<html><body><div class="nav">menu</div></body></html>`)
	require.Error(t, err)

	var ingErr *Error
	assert.ErrorAs(t, err, &ingErr)
	assert.Contains(t, err.Error(), "no listing content")
}

func TestExtractListing_NoiseFiltered(t *testing.T) {
	html := `
	<html><body>
		<span id="productTitle">Widget</span>
		<div id="feature-bullets"><ul>
			<li><span class="a-list-item">Make sure this fits by entering your model number.</span></li>
			<li><span class="a-list-item">Actual feature text</span></li>
		</ul></div>
	</body></html>`

	fields, err := ExtractListing(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"Actual feature text"}, fields.BulletPoints)
}
