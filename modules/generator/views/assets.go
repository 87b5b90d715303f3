package views

// copyAction runs on the Copy button. Failures leave the selection untouched.
const copyAction = `copyEmail().then(() => { $copyError = ''; $copied = true; setTimeout(() => { $copied = false }, 2000) }).catch((err) => { console.error('Failed to copy', err); $copyError = 'Copy failed. Select the preview and copy it manually.' })`

// clipboardJS writes the preview as text/html with a text/plain alternative.
const clipboardJS = `
async function copyEmail() {
  const el = document.getElementById('email-body');
  if (!el) throw new Error('preview not rendered');
  const html = el.innerHTML;
  const text = el.innerText;
  if (window.ClipboardItem && navigator.clipboard && navigator.clipboard.write) {
    await navigator.clipboard.write([new ClipboardItem({
      'text/html': new Blob([html], { type: 'text/html' }),
      'text/plain': new Blob([text], { type: 'text/plain' }),
    })]);
    return;
  }
  await navigator.clipboard.writeText(text);
}
`

const pageCSS = `
*{box-sizing:border-box}
body{margin:0;padding:32px 16px;background:#f8fafc;color:#0f172a;font-family:system-ui,-apple-system,"Segoe UI",sans-serif}
h2{font-size:20px;margin:0 0 24px}
.layout{max-width:1280px;margin:0 auto;display:flex;flex-wrap:wrap;gap:32px}
.panel{background:#fff;border:1px solid #e2e8f0;border-radius:12px;padding:24px;box-shadow:0 1px 2px rgba(0,0,0,.05)}
.config{flex:1 1 280px;max-width:360px;height:fit-content}
.output{flex:3 1 480px;display:flex;flex-direction:column}
.output-header{display:flex;justify-content:space-between;align-items:center;margin-bottom:16px}
.output-header h2{margin:0}
.actions{display:flex;gap:8px}
.field{margin-bottom:20px}
.field label[for],.legend{display:block;font-size:14px;font-weight:600;margin-bottom:8px;color:#334155}
.field input[type=text]{width:100%;padding:10px;border:1px solid #cbd5e1;border-radius:8px}
.guides{padding-top:16px;border-top:1px solid #e2e8f0}
.row{display:flex;gap:16px}
.column{display:flex;flex-direction:column;gap:10px}
.choice{display:flex;align-items:center;gap:8px;font-size:14px;cursor:pointer}
button{padding:6px 20px;border:0;border-radius:8px;background:#2563eb;color:#fff;font-weight:500;cursor:pointer}
button.secondary{background:#0f172a}
button:disabled{background:#cbd5e1;color:#64748b;cursor:not-allowed}
.preview{flex-grow:1;padding:40px}
.subject{margin:0 0 24px;font-size:13px;color:#64748b}
.subject span{font-weight:600}
.copy-error{color:#b91c1c;font-size:14px}
#toast-container{position:fixed;right:16px;bottom:16px;z-index:60}
.toast{padding:12px 16px;border-radius:8px;color:#fff;background:#334155;cursor:pointer}
.toast-success{background:#15803d}.toast-warning{background:#b45309}.toast-error{background:#b91c1c}
.modal{position:fixed;inset:0;display:flex;align-items:center;justify-content:center;background:rgba(15,23,42,.2);z-index:50}
.modal-card{background:#fff;padding:32px;border-radius:16px;text-align:center;min-width:260px;box-shadow:0 20px 40px rgba(0,0,0,.2)}
.modal-card h3{margin:0;font-size:20px}.modal-card p{margin:4px 0 0;color:#64748b}
.check{width:64px;height:64px;margin:0 auto 16px;border-radius:50%;background:#dcfce7;color:#16a34a;font-size:36px;line-height:64px}
.error-page{max-width:480px;margin:64px auto;text-align:center}
`
