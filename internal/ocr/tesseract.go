package ocr

import "os/exec"

// ExtractText runs tesseract with the English model against a file on
// disk and returns the recognized plain text.
func ExtractText(filePath string) (string, error) {
	cmd := exec.Command("tesseract", filePath, "stdout", "-l", "eng")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
