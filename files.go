package fleeks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/fleeks/fleeks-sdk-go/models"
)

// FileService provides file operations inside a workspace.
type FileService struct {
	client *Client
}

// Read reads the content of a file.
func (f *FileService) Read(ctx context.Context, workspaceID, filePath string) ([]byte, error) {
	params := url.Values{}
	params.Set("path", filePath)

	var result struct {
		Content string `json:"content"`
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/read", workspaceID)
	if err := f.client.get(ctx, apiPath, params, &result); err != nil {
		return nil, err
	}
	return []byte(result.Content), nil
}

// ReadString reads the content of a file as a string.
func (f *FileService) ReadString(ctx context.Context, workspaceID, filePath string) (string, error) {
	content, err := f.Read(ctx, workspaceID, filePath)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Write writes content to a file, creating it if needed.
func (f *FileService) Write(ctx context.Context, workspaceID, filePath string, content []byte) error {
	req := map[string]string{
		"path":    filePath,
		"content": string(content),
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/write", workspaceID)
	return f.client.do(ctx, http.MethodPost, apiPath, req, nil)
}

// WriteString writes a string to a file.
func (f *FileService) WriteString(ctx context.Context, workspaceID, filePath, content string) error {
	return f.Write(ctx, workspaceID, filePath, []byte(content))
}

// List lists the entries of a directory.
func (f *FileService) List(ctx context.Context, workspaceID, dirPath string) ([]models.FileInfo, error) {
	params := url.Values{}
	params.Set("path", dirPath)

	var result struct {
		Files []models.FileInfo `json:"files"`
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/list", workspaceID)
	if err := f.client.get(ctx, apiPath, params, &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

// Stat returns information about a file or directory.
func (f *FileService) Stat(ctx context.Context, workspaceID, filePath string) (*models.FileInfo, error) {
	params := url.Values{}
	params.Set("path", filePath)

	var info models.FileInfo
	apiPath := fmt.Sprintf("workspaces/%s/files/stat", workspaceID)
	if err := f.client.get(ctx, apiPath, params, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Exists checks whether a file or directory exists.
func (f *FileService) Exists(ctx context.Context, workspaceID, filePath string) (bool, error) {
	_, err := f.Stat(ctx, workspaceID, filePath)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Mkdir creates a directory.
func (f *FileService) Mkdir(ctx context.Context, workspaceID, dirPath string, recursive bool) error {
	req := map[string]any{
		"path":      dirPath,
		"recursive": recursive,
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/mkdir", workspaceID)
	return f.client.do(ctx, http.MethodPost, apiPath, req, nil)
}

// MkdirAll creates a directory and all parent directories.
func (f *FileService) MkdirAll(ctx context.Context, workspaceID, dirPath string) error {
	return f.Mkdir(ctx, workspaceID, dirPath, true)
}

// Remove removes a file or directory.
func (f *FileService) Remove(ctx context.Context, workspaceID, targetPath string, recursive bool) error {
	params := url.Values{}
	params.Set("path", targetPath)
	if recursive {
		params.Set("recursive", "true")
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/delete?%s", workspaceID, params.Encode())
	return f.client.do(ctx, http.MethodDelete, apiPath, nil, nil)
}

// RemoveAll removes a file or directory recursively.
func (f *FileService) RemoveAll(ctx context.Context, workspaceID, targetPath string) error {
	return f.Remove(ctx, workspaceID, targetPath, true)
}

// Move moves or renames a file or directory.
func (f *FileService) Move(ctx context.Context, workspaceID, srcPath, dstPath string) error {
	req := map[string]string{
		"src": srcPath,
		"dst": dstPath,
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/move", workspaceID)
	return f.client.do(ctx, http.MethodPost, apiPath, req, nil)
}

// Copy copies a file or directory.
func (f *FileService) Copy(ctx context.Context, workspaceID, srcPath, dstPath string) error {
	req := map[string]string{
		"src": srcPath,
		"dst": dstPath,
	}
	apiPath := fmt.Sprintf("workspaces/%s/files/copy", workspaceID)
	return f.client.do(ctx, http.MethodPost, apiPath, req, nil)
}

// Join joins path elements with forward slashes.
func (f *FileService) Join(elem ...string) string {
	return path.Join(elem...)
}
